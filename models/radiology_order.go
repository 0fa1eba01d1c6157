package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RadiologyOrder is an imaging request linked to a patient and optionally an appointment
type RadiologyOrder struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OrderNumber string `gorm:"size:50;uniqueIndex;not null" json:"order_number"`

	PatientID uint    `gorm:"index;not null" json:"patient_id"`
	Patient   Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`

	DoctorID *uint   `gorm:"index" json:"doctor_id,omitempty"`
	Doctor   *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`

	AppointmentID *uint `gorm:"index" json:"appointment_id,omitempty"`

	ScanType string  `gorm:"size:100;not null" json:"scan_type"` // X-RAY, CT, MRI, ULTRASOUND
	BodyPart *string `gorm:"size:100" json:"body_part,omitempty"`
	Status   string  `gorm:"size:20;default:'ORDERED';index" json:"status"`
	Notes    *string `gorm:"type:text" json:"notes,omitempty"`
}

// BeforeCreate hook to generate the order number
func (o *RadiologyOrder) BeforeCreate(tx *gorm.DB) error {
	if o.OrderNumber == "" {
		o.OrderNumber = "RAD-" + uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for RadiologyOrder model
func (RadiologyOrder) TableName() string {
	return "radiology_orders"
}
