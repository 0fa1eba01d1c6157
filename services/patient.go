package services

import (
	"errors"

	"hospital_app_go/models"

	"gorm.io/gorm"
)

// PatientUpdate carries the optional fields of a partial patient update
type PatientUpdate struct {
	Name       *string
	Email      *string
	Phone      *string
	Gender     *string
	BloodGroup *string
	Address    *string
}

// CreatePatient persists the patient together with its owned user row. Gorm
// writes the association inside one transaction, so the patient never exists
// without its user.
func CreatePatient(db *gorm.DB, p *models.Patient) (*models.Patient, error) {
	if p.User.Name == "" {
		return nil, NewValidationError("name is required")
	}
	if p.User.Email == "" {
		return nil, NewValidationError("email is required")
	}
	if p.User.Role == "" {
		p.User.Role = models.RolePatient
	}

	if err := db.Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewValidationError("a user with this email already exists")
		}
		return nil, err
	}

	return GetPatientByID(db, p.ID)
}

// GetPatients returns all patients with their user rows, most recent first
func GetPatients(db *gorm.DB) ([]models.Patient, error) {
	var patients []models.Patient
	err := db.Preload("User").Order("id desc").Find(&patients).Error
	return patients, err
}

// GetPatientByID fetches a single patient with its user row
func GetPatientByID(db *gorm.DB, id uint) (*models.Patient, error) {
	var p models.Patient
	if err := db.Preload("User").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// UpdatePatient applies a partial merge across the patient row and its user row
func UpdatePatient(db *gorm.DB, id uint, update PatientUpdate) (*models.Patient, error) {
	existing, err := GetPatientByID(db, id)
	if err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		userChanges := map[string]interface{}{}
		if update.Name != nil {
			userChanges["name"] = *update.Name
		}
		if update.Email != nil {
			userChanges["email"] = *update.Email
		}
		if update.Phone != nil {
			userChanges["phone"] = *update.Phone
		}
		if len(userChanges) > 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", existing.UserID).Updates(userChanges).Error; err != nil {
				return err
			}
		}

		patientChanges := map[string]interface{}{}
		if update.Gender != nil {
			patientChanges["gender"] = *update.Gender
		}
		if update.BloodGroup != nil {
			patientChanges["blood_group"] = *update.BloodGroup
		}
		if update.Address != nil {
			patientChanges["address"] = *update.Address
		}
		if len(patientChanges) > 0 {
			if err := tx.Model(&models.Patient{}).Where("id = ?", id).Updates(patientChanges).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewValidationError("a user with this email already exists")
		}
		return nil, err
	}

	return GetPatientByID(db, id)
}

// DeletePatient soft-deletes the patient row; the user row is kept for history
func DeletePatient(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Patient{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
