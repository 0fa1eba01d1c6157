package services

import (
	"strings"
	"testing"

	"hospital_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestRadiologyOrderService(t *testing.T) {
	db := setupServiceTestDB(t)
	patient := createTestPatient(t, db, "Iris Stone", "iris@test.com")

	t.Run("CRUD", func(t *testing.T) {
		bodyPart := "Left wrist"
		created, err := CreateRadiologyOrder(db, &models.RadiologyOrder{
			PatientID: patient.ID,
			ScanType:  "X-RAY",
			BodyPart:  &bodyPart,
		})
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(created.OrderNumber, "RAD-"))
		assert.Equal(t, models.OrderStatusOrdered, created.Status)

		status := models.OrderStatusInProgress
		updated, err := UpdateRadiologyOrder(db, created.ID, OrderUpdate{Status: &status})
		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusInProgress, updated.Status)

		assert.NoError(t, DeleteRadiologyOrder(db, created.ID))
		_, err = GetRadiologyOrderByID(db, created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("MissingScanTypeRejected", func(t *testing.T) {
		_, err := CreateRadiologyOrder(db, &models.RadiologyOrder{PatientID: patient.ID})
		assert.True(t, IsValidationError(err))
	})
}
