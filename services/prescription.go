package services

import (
	"errors"

	"hospital_app_go/models"

	"gorm.io/gorm"
)

// CreatePrescription persists the prescription and its line items as one unit.
// Gorm writes the parent and the association rows inside a single transaction,
// so a failed item insert rolls the parent back too.
func CreatePrescription(db *gorm.DB, p *models.Prescription) (*models.Prescription, error) {
	if p.PatientID == 0 {
		return nil, NewValidationError("patient_id is required")
	}
	if p.DoctorID == 0 {
		return nil, NewValidationError("doctor_id is required")
	}
	if len(p.Items) == 0 {
		return nil, NewValidationError("items are required")
	}

	if err := db.Create(p).Error; err != nil {
		return nil, err
	}

	return GetPrescriptionByID(db, p.ID)
}

// GetPrescriptions returns all prescriptions with their full relation graph,
// most recent first.
func GetPrescriptions(db *gorm.DB) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := db.Preload("Patient.User").
		Preload("Doctor.User").
		Preload("Items.Medicine").
		Order("created_at desc").
		Find(&prescriptions).Error
	return prescriptions, err
}

// GetPrescriptionByID fetches a single prescription with items and medicines
func GetPrescriptionByID(db *gorm.DB, id uint) (*models.Prescription, error) {
	var p models.Prescription
	err := db.Preload("Patient.User").
		Preload("Doctor.User").
		Preload("Items.Medicine").
		First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// DeletePrescription removes the line items and the parent row in one
// transaction; either both deletes land or neither does.
func DeletePrescription(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var existing models.Prescription
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("prescription_id = ?", id).Delete(&models.PrescriptionItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Prescription{}, id).Error
	})
}
