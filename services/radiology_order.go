package services

import (
	"errors"

	"hospital_app_go/models"

	"gorm.io/gorm"
)

// CreateRadiologyOrder persists an imaging request
func CreateRadiologyOrder(db *gorm.DB, o *models.RadiologyOrder) (*models.RadiologyOrder, error) {
	if o.PatientID == 0 {
		return nil, NewValidationError("patient_id is required")
	}
	if o.ScanType == "" {
		return nil, NewValidationError("scan_type is required")
	}
	if err := db.Create(o).Error; err != nil {
		return nil, err
	}
	return GetRadiologyOrderByID(db, o.ID)
}

// GetRadiologyOrders returns all radiology orders, most recent first
func GetRadiologyOrders(db *gorm.DB) ([]models.RadiologyOrder, error) {
	var orders []models.RadiologyOrder
	err := db.Preload("Patient.User").Preload("Doctor.User").
		Order("id desc").Find(&orders).Error
	return orders, err
}

// GetRadiologyOrderByID fetches a single radiology order with relations
func GetRadiologyOrderByID(db *gorm.DB, id uint) (*models.RadiologyOrder, error) {
	var o models.RadiologyOrder
	err := db.Preload("Patient.User").Preload("Doctor.User").First(&o, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// UpdateRadiologyOrder applies a partial merge (status transitions, notes)
func UpdateRadiologyOrder(db *gorm.DB, id uint, update OrderUpdate) (*models.RadiologyOrder, error) {
	if update.Status != nil && !models.IsValidOrderStatus(*update.Status) {
		return nil, NewValidationError("invalid order status")
	}

	o, err := GetRadiologyOrderByID(db, id)
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
	return GetRadiologyOrderByID(db, id)
}

// DeleteRadiologyOrder removes a radiology order
func DeleteRadiologyOrder(db *gorm.DB, id uint) error {
	result := db.Delete(&models.RadiologyOrder{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
