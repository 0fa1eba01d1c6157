package models

import (
	"time"

	"gorm.io/gorm"
)

// User role constants
const (
	RolePatient = "PATIENT"
	RoleDoctor  = "DOCTOR"
	RoleAdmin   = "ADMIN"
)

// User holds the account/contact identity shared by patients, doctors and staff
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name  string  `gorm:"size:200;not null" json:"name"`
	Email string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone *string `gorm:"size:20" json:"phone,omitempty"`
	Role  string  `gorm:"size:20;default:'PATIENT';index" json:"role"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
