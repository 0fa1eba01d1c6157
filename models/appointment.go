package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment status constants
const (
	AppointmentStatusScheduled = "SCHEDULED"
	AppointmentStatusConfirmed = "CONFIRMED"
	AppointmentStatusCompleted = "COMPLETED"
	AppointmentStatusCancelled = "CANCELLED"
	AppointmentStatusNoShow    = "NO_SHOW"
)

// DefaultAppointmentDuration is used when the caller omits duration_mins
const DefaultAppointmentDuration = 30

// Appointment represents a scheduled visit between a patient and a department/doctor.
// Deletion is a soft delete: IsDeleted/IsActive/DeletedAt are flipped and the row
// stays readable by id, so DeletedAt is deliberately a plain *time.Time rather
// than gorm.DeletedAt (listings filter on is_deleted explicitly).
type Appointment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// External identifier, assigned once at creation and immutable
	AppointmentNumber string `gorm:"size:50;uniqueIndex;not null" json:"appointment_number"`

	PatientID uint    `gorm:"index;not null" json:"patient_id"`
	Patient   Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`

	DoctorID *uint   `gorm:"index" json:"doctor_id,omitempty"`
	Doctor   *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`

	DepartmentID uint       `gorm:"index;not null" json:"department_id"`
	Department   Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`

	ScheduledAt  time.Time `gorm:"index;not null" json:"scheduled_at"`
	DurationMins int       `gorm:"default:30" json:"duration_mins"`
	Status       string    `gorm:"size:20;default:'SCHEDULED';index" json:"status"`

	Reason *string `gorm:"type:text" json:"reason,omitempty"`
	Notes  *string `gorm:"type:text" json:"notes,omitempty"`

	CreatedByID *uint `gorm:"index" json:"created_by_id,omitempty"`

	// Soft-delete lifecycle
	IsActive  bool       `gorm:"default:true;index" json:"is_active"`
	IsDeleted bool       `gorm:"default:false;index" json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`

	// Related orders, loaded only on reads by id
	Prescriptions   []Prescription   `gorm:"foreignKey:AppointmentID" json:"prescriptions,omitempty"`
	LabOrders       []LabOrder       `gorm:"foreignKey:AppointmentID" json:"lab_orders,omitempty"`
	RadiologyOrders []RadiologyOrder `gorm:"foreignKey:AppointmentID" json:"radiology_orders,omitempty"`
}

// BeforeCreate hook to generate the appointment number
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.AppointmentNumber == "" {
		a.AppointmentNumber = "APT-" + uuid.New().String()
	}
	if a.DurationMins == 0 {
		a.DurationMins = DefaultAppointmentDuration
	}
	if a.Status == "" {
		a.Status = AppointmentStatusScheduled
	}
	return nil
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// IsValidAppointmentStatus checks if the status is valid
func IsValidAppointmentStatus(status string) bool {
	validStatuses := []string{
		AppointmentStatusScheduled,
		AppointmentStatusConfirmed,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
		AppointmentStatusNoShow,
	}
	for _, s := range validStatuses {
		if s == status {
			return true
		}
	}
	return false
}
