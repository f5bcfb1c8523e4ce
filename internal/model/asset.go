package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetStatus is the lifecycle state of an asset.
type AssetStatus string

const (
	StatusAvailable     AssetStatus = "AVAILABLE"
	StatusInUse         AssetStatus = "IN_USE"
	StatusInMaintenance AssetStatus = "IN_MAINTENANCE"
)

// Valid reports whether s is one of the three enumerated statuses.
func (s AssetStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusInUse, StatusInMaintenance:
		return true
	}
	return false
}

// Asset is a company-owned piece of equipment (notebook, monitor, ...).
// Type is free text; the assignment rules substring-match it.
type Asset struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string      `gorm:"not null" json:"name"`
	Type      string      `gorm:"not null" json:"type"`
	Status    AssetStatus `gorm:"type:varchar(20);not null;default:'AVAILABLE'" json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`

	Assignments []AssetAssignment `gorm:"foreignKey:AssetID" json:"-"`
}

func (Asset) TableName() string { return "assets" }

func (a *Asset) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = StatusAvailable
	}
	return nil
}
