package services

import (
	"errors"

	"hospital_app_go/models"

	"gorm.io/gorm"
)

// OrderUpdate carries the optional fields of a partial lab/radiology order update
type OrderUpdate struct {
	Status *string
	Notes  *string
}

// CreateLabOrder persists a lab test request
func CreateLabOrder(db *gorm.DB, o *models.LabOrder) (*models.LabOrder, error) {
	if o.PatientID == 0 {
		return nil, NewValidationError("patient_id is required")
	}
	if o.TestName == "" {
		return nil, NewValidationError("test_name is required")
	}
	if err := db.Create(o).Error; err != nil {
		return nil, err
	}
	return GetLabOrderByID(db, o.ID)
}

// GetLabOrders returns all lab orders, most recent first
func GetLabOrders(db *gorm.DB) ([]models.LabOrder, error) {
	var orders []models.LabOrder
	err := db.Preload("Patient.User").Preload("Doctor.User").
		Order("id desc").Find(&orders).Error
	return orders, err
}

// GetLabOrderByID fetches a single lab order with relations
func GetLabOrderByID(db *gorm.DB, id uint) (*models.LabOrder, error) {
	var o models.LabOrder
	err := db.Preload("Patient.User").Preload("Doctor.User").First(&o, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// UpdateLabOrder applies a partial merge (status transitions, notes)
func UpdateLabOrder(db *gorm.DB, id uint, update OrderUpdate) (*models.LabOrder, error) {
	if update.Status != nil && !models.IsValidOrderStatus(*update.Status) {
		return nil, NewValidationError("invalid order status")
	}

	o, err := GetLabOrderByID(db, id)
	if err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if update.Status != nil {
		changes["status"] = *update.Status
	}
	if update.Notes != nil {
		changes["notes"] = *update.Notes
	}
	if len(changes) > 0 {
		if err := db.Model(o).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return GetLabOrderByID(db, id)
}

// DeleteLabOrder removes a lab order
func DeleteLabOrder(db *gorm.DB, id uint) error {
	result := db.Delete(&models.LabOrder{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
