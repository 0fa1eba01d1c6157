package models

import (
	"time"

	"gorm.io/gorm"
)

// Medicine is a catalog item referenced by prescription line items
type Medicine struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name      string   `gorm:"size:200;not null;index" json:"name"`
	Strength  *string  `gorm:"size:50" json:"strength,omitempty"` // e.g. "500mg"
	Form      *string  `gorm:"size:50" json:"form,omitempty"`     // tablet, syrup, injection
	Stock     int      `gorm:"default:0" json:"stock"`
	UnitPrice *float64 `json:"unit_price,omitempty"`
}

// TableName specifies the table name for Medicine model
func (Medicine) TableName() string {
	return "medicines"
}
