package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Prescription is created with its full item list in one transaction and is
// hard-deleted (items first, then the parent row). No soft-delete lifecycle.
type Prescription struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Opaque public identifier, assigned once at creation and immutable
	PublicID string `gorm:"size:50;uniqueIndex;not null" json:"public_id"`

	// Optional human-facing number supplied by the caller
	PrescriptionNumber *string `gorm:"size:50" json:"prescription_number,omitempty"`

	PatientID uint    `gorm:"index;not null" json:"patient_id"`
	Patient   Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`

	DoctorID uint   `gorm:"index;not null" json:"doctor_id"`
	Doctor   Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`

	AppointmentID *uint `gorm:"index" json:"appointment_id,omitempty"`

	Notes *string `gorm:"type:text" json:"notes,omitempty"`

	Items []PrescriptionItem `gorm:"foreignKey:PrescriptionID" json:"items,omitempty"`
}

// BeforeCreate hook to generate the public identifier
func (p *Prescription) BeforeCreate(tx *gorm.DB) error {
	if p.PublicID == "" {
		p.PublicID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Prescription model
func (Prescription) TableName() string {
	return "prescriptions"
}

// PrescriptionItem is a line item owned exclusively by its prescription
type PrescriptionItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PrescriptionID uint `gorm:"index;not null" json:"prescription_id"`

	MedicineID uint     `gorm:"index;not null" json:"medicine_id"`
	Medicine   Medicine `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`

	Dosage       string  `gorm:"size:100" json:"dosage"` // e.g. "1-0-1"
	Quantity     int     `gorm:"not null" json:"quantity"`
	DurationDays int     `json:"duration_days"`
	Instructions *string `gorm:"type:text" json:"instructions,omitempty"`
}

// TableName specifies the table name for PrescriptionItem model
func (PrescriptionItem) TableName() string {
	return "prescription_items"
}
