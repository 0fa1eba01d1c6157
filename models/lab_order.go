package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order status constants shared by lab and radiology orders
const (
	OrderStatusOrdered    = "ORDERED"
	OrderStatusInProgress = "IN_PROGRESS"
	OrderStatusCompleted  = "COMPLETED"
	OrderStatusCancelled  = "CANCELLED"
)

// LabOrder is a laboratory test request linked to a patient and optionally an appointment
type LabOrder struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OrderNumber string `gorm:"size:50;uniqueIndex;not null" json:"order_number"`

	PatientID uint    `gorm:"index;not null" json:"patient_id"`
	Patient   Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`

	DoctorID *uint   `gorm:"index" json:"doctor_id,omitempty"`
	Doctor   *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`

	AppointmentID *uint `gorm:"index" json:"appointment_id,omitempty"`

	TestName string  `gorm:"size:200;not null" json:"test_name"`
	Status   string  `gorm:"size:20;default:'ORDERED';index" json:"status"`
	Notes    *string `gorm:"type:text" json:"notes,omitempty"`
}

// BeforeCreate hook to generate the order number
func (o *LabOrder) BeforeCreate(tx *gorm.DB) error {
	if o.OrderNumber == "" {
		o.OrderNumber = "LAB-" + uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for LabOrder model
func (LabOrder) TableName() string {
	return "lab_orders"
}

// IsValidOrderStatus checks if the status is valid for lab/radiology orders
func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusOrdered, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
