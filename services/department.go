package services

import (
	"errors"

	"hospital_app_go/models"

	"gorm.io/gorm"
)

// ResolveDepartment returns the department row for a type code, creating it on
// first reference. The create is guarded by the unique index on departments.type:
// if a concurrent request wins the insert, the duplicate-key error is swallowed
// and the winning row is fetched instead, so callers always get exactly one row
// per code.
func ResolveDepartment(db *gorm.DB, typeCode string) (*models.Department, error) {
	if typeCode == "" {
		return nil, NewValidationError("department is required")
	}

	var dept models.Department
	err := db.Where("type = ?", typeCode).First(&dept).Error
	if err == nil {
		return &dept, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	dept = models.Department{
		Type: typeCode,
		Name: models.DepartmentDisplayName(typeCode),
	}
	if err := db.Create(&dept).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race; the row exists now
			var existing models.Department
			if ferr := db.Where("type = ?", typeCode).First(&existing).Error; ferr != nil {
				return nil, ferr
			}
			return &existing, nil
		}
		return nil, err
	}

	return &dept, nil
}
