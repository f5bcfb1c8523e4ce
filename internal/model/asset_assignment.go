package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetAssignment records that an employee currently holds an asset.
// The composite unique index makes the (asset, employee) pair the
// store-level duplicate guard; the engine's pre-check only exists for a
// friendly error message.
type AssetAssignment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AssetID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_asset_employee" json:"assetId"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_asset_employee;index" json:"employeeId"`
	AssignedAt time.Time `gorm:"autoCreateTime" json:"assignedAt"`

	Asset    *Asset    `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (AssetAssignment) TableName() string { return "asset_assignments" }

func (a *AssetAssignment) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
