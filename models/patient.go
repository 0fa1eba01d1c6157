package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Patient represents a registered patient; identity/contact data lives on the owned User
type Patient struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	// Medical record number, caller-opaque, assigned once at creation
	MRN string `gorm:"size:50;uniqueIndex;not null" json:"mrn"`

	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender      *string    `gorm:"size:10" json:"gender,omitempty"`
	BloodGroup  *string    `gorm:"size:5" json:"blood_group,omitempty"`
	Address     *string    `gorm:"type:text" json:"address,omitempty"`
}

// BeforeCreate hook to generate the medical record number
func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.MRN == "" {
		p.MRN = "MRN-" + uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
