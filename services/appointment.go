package services

import (
	"errors"
	"time"

	"hospital_app_go/models"

	"gorm.io/gorm"
)

// AppointmentUpdate carries the optional fields of a partial appointment update.
// Nil pointers leave the stored value untouched.
type AppointmentUpdate struct {
	Department   *string // type code; re-resolves the department FK
	ScheduledAt  *time.Time
	DoctorID     *uint
	DurationMins *int
	Status       *string
	Reason       *string
	Notes        *string
}

// CreateAppointment resolves the department and persists the appointment in a
// single transaction, then returns it with its direct relations attached.
func CreateAppointment(db *gorm.DB, apt *models.Appointment, departmentKey string) (*models.Appointment, error) {
	if apt.PatientID == 0 {
		return nil, NewValidationError("patient_id is required")
	}
	if apt.ScheduledAt.IsZero() {
		return nil, NewValidationError("scheduled_at is required")
	}
	if apt.Status != "" && !models.IsValidAppointmentStatus(apt.Status) {
		return nil, NewValidationError("invalid appointment status")
	}

	var patientCount int64
	if err := db.Model(&models.Patient{}).Where("id = ?", apt.PatientID).Count(&patientCount).Error; err != nil {
		return nil, err
	}
	if patientCount == 0 {
		return nil, NewValidationError("patient does not exist")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		dept, err := ResolveDepartment(tx, departmentKey)
		if err != nil {
			return err
		}
		apt.DepartmentID = dept.ID
		return tx.Create(apt).Error
	})
	if err != nil {
		return nil, err
	}

	return getAppointment(db, apt.ID, false)
}

// GetAppointments returns non-deleted appointments, most recent first, with
// direct relations only (deep relation sets are reserved for reads by id to
// bound listing payload size).
func GetAppointments(db *gorm.DB) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := db.Where("is_deleted = ?", false).
		Order("id desc").
		Preload("Patient.User").
		Preload("Doctor.User").
		Preload("Department").
		Find(&appointments).Error
	return appointments, err
}

// GetAppointmentByID fetches a single appointment with its extended relation
// set (prescriptions, lab and radiology orders). Soft-deleted rows are still
// returned here; only listings exclude them.
func GetAppointmentByID(db *gorm.DB, id uint) (*models.Appointment, error) {
	return getAppointment(db, id, true)
}

func getAppointment(db *gorm.DB, id uint, deep bool) (*models.Appointment, error) {
	query := db.Preload("Patient.User").
		Preload("Doctor.User").
		Preload("Department")
	if deep {
		query = query.
			Preload("Prescriptions").
			Preload("LabOrders").
			Preload("RadiologyOrders")
	}

	var apt models.Appointment
	if err := query.First(&apt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &apt, nil
}

// UpdateAppointment applies a partial merge. A department key re-resolves the
// foreign key (creating the lookup row if needed) without touching other fields.
func UpdateAppointment(db *gorm.DB, id uint, update AppointmentUpdate) (*models.Appointment, error) {
	var existing models.Appointment
	if err := db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if update.Status != nil && !models.IsValidAppointmentStatus(*update.Status) {
		return nil, NewValidationError("invalid appointment status")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		changes := map[string]interface{}{}

		if update.Department != nil {
			dept, err := ResolveDepartment(tx, *update.Department)
			if err != nil {
				return err
			}
			changes["department_id"] = dept.ID
		}
		if update.ScheduledAt != nil {
			changes["scheduled_at"] = *update.ScheduledAt
		}
		if update.DoctorID != nil {
			changes["doctor_id"] = *update.DoctorID
		}
		if update.DurationMins != nil {
			changes["duration_mins"] = *update.DurationMins
		}
		if update.Status != nil {
			changes["status"] = *update.Status
		}
		if update.Reason != nil {
			changes["reason"] = *update.Reason
		}
		if update.Notes != nil {
			changes["notes"] = *update.Notes
		}

		if len(changes) == 0 {
			return nil
		}
		return tx.Model(&existing).Updates(changes).Error
	})
	if err != nil {
		return nil, err
	}

	return getAppointment(db, id, false)
}

// SoftDeleteAppointment marks the appointment deleted and inactive, stamping
// the deletion time. The row stays readable by id and the operation is
// repeatable; 404 is reserved for ids that never existed.
func SoftDeleteAppointment(db *gorm.DB, id uint) (*models.Appointment, error) {
	var existing models.Appointment
	if err := db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	err := db.Model(&existing).Updates(map[string]interface{}{
		"is_deleted": true,
		"is_active":  false,
		"deleted_at": now,
	}).Error
	if err != nil {
		return nil, err
	}

	return getAppointment(db, id, false)
}
