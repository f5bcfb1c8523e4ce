package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee belongs to exactly one company. Email and CPF (11-digit
// national id) are natural keys, unique across the whole store.
type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CPF       string    `gorm:"column:cpf;uniqueIndex;not null" json:"cpf"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"companyId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Company     *Company          `gorm:"foreignKey:CompanyID;constraint:OnDelete:RESTRICT" json:"company,omitempty"`
	Assignments []AssetAssignment `gorm:"foreignKey:EmployeeID" json:"-"`
}

func (Employee) TableName() string { return "employees" }

func (e *Employee) BeforeCreate(_ *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
