package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company is an organization that employs people and owns assets.
// CNPJ is the 14-digit national tax id — the natural key.
type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CNPJ      string    `gorm:"column:cnpj;uniqueIndex;not null" json:"cnpj"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Deleting a company with employees is rejected by the store (RESTRICT).
	Employees []Employee `gorm:"foreignKey:CompanyID" json:"-"`
}

func (Company) TableName() string { return "companies" }

func (c *Company) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
