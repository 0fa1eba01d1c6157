package services

import (
	"strings"
	"testing"

	"hospital_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestLabOrderService(t *testing.T) {
	db := setupServiceTestDB(t)
	patient := createTestPatient(t, db, "Henry Reed", "henry@test.com")

	t.Run("CRUD", func(t *testing.T) {
		created, err := CreateLabOrder(db, &models.LabOrder{
			PatientID: patient.ID,
			TestName:  "Complete Blood Count",
		})
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(created.OrderNumber, "LAB-"))
		assert.Equal(t, models.OrderStatusOrdered, created.Status)

		status := models.OrderStatusCompleted
		updated, err := UpdateLabOrder(db, created.ID, OrderUpdate{Status: &status})
		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusCompleted, updated.Status)

		assert.NoError(t, DeleteLabOrder(db, created.ID))
		_, err = GetLabOrderByID(db, created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("MissingTestNameRejected", func(t *testing.T) {
		_, err := CreateLabOrder(db, &models.LabOrder{PatientID: patient.ID})
		assert.True(t, IsValidationError(err))
	})

	t.Run("InvalidStatusRejected", func(t *testing.T) {
		created, err := CreateLabOrder(db, &models.LabOrder{
			PatientID: patient.ID,
			TestName:  "Lipid Panel",
		})
		assert.NoError(t, err)

		status := "MAYBE"
		_, err = UpdateLabOrder(db, created.ID, OrderUpdate{Status: &status})
		assert.True(t, IsValidationError(err))
	})
}
