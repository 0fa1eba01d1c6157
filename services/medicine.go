package services

import (
	"errors"

	"hospital_app_go/models"

	"gorm.io/gorm"
)

// CreateMedicine adds a catalog item
func CreateMedicine(db *gorm.DB, m *models.Medicine) error {
	if m.Name == "" {
		return NewValidationError("name is required")
	}
	return db.Create(m).Error
}

// GetMedicines returns the medicine catalog ordered by name
func GetMedicines(db *gorm.DB) ([]models.Medicine, error) {
	var medicines []models.Medicine
	err := db.Order("name asc").Find(&medicines).Error
	return medicines, err
}

// GetMedicineByID fetches a single catalog item
func GetMedicineByID(db *gorm.DB, id uint) (*models.Medicine, error) {
	var m models.Medicine
	if err := db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// UpdateMedicine applies a partial merge of catalog fields
func UpdateMedicine(db *gorm.DB, id uint, changes map[string]interface{}) (*models.Medicine, error) {
	m, err := GetMedicineByID(db, id)
	if err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		if err := db.Model(m).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return GetMedicineByID(db, id)
}

// DeleteMedicine soft-deletes a catalog item; historical prescription items
// keep their foreign key.
func DeleteMedicine(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Medicine{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
