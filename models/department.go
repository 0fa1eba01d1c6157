package models

import (
	"time"
)

// Department is a lookup row keyed by an enum-like type code (e.g. "CARDIOLOGY").
// Rows are created lazily the first time an appointment references the code and
// are never deleted. The unique index on Type is what makes the find-or-create
// in services.ResolveDepartment safe under concurrency.
type Department struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Type string `gorm:"size:50;uniqueIndex;not null" json:"type"`
	Name string `gorm:"size:100;not null" json:"name"`
}

// DepartmentDisplayName derives the stored display name from a type code
func DepartmentDisplayName(typeCode string) string {
	return typeCode + " Department"
}

// TableName specifies the table name for Department model
func (Department) TableName() string {
	return "departments"
}
