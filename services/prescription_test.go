package services

import (
	"testing"

	"hospital_app_go/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func createTestMedicine(t *testing.T, db *gorm.DB, name string) *models.Medicine {
	m := &models.Medicine{Name: name}
	assert.NoError(t, db.Create(m).Error)
	return m
}

func TestPrescriptionService(t *testing.T) {
	db := setupServiceTestDB(t)
	patient := createTestPatient(t, db, "Carol White", "carol@test.com")
	doctor := createTestDoctor(t, db, "Dr. Dan Green", "dan@test.com")
	paracetamol := createTestMedicine(t, db, "Paracetamol")
	ibuprofen := createTestMedicine(t, db, "Ibuprofen")

	t.Run("CreateWithItems", func(t *testing.T) {
		p := &models.Prescription{
			PatientID: patient.ID,
			DoctorID:  doctor.ID,
			Items: []models.PrescriptionItem{
				{MedicineID: paracetamol.ID, Dosage: "1-0-1", Quantity: 10, DurationDays: 5},
				{MedicineID: ibuprofen.ID, Dosage: "0-0-1", Quantity: 5, DurationDays: 5},
			},
		}

		created, err := CreatePrescription(db, p)
		assert.NoError(t, err)
		assert.NotEmpty(t, created.PublicID)
		assert.Len(t, created.Items, 2)
		assert.Equal(t, "Paracetamol", created.Items[0].Medicine.Name)
		assert.Equal(t, "Carol White", created.Patient.User.Name)
	})

	t.Run("PublicIDsAreUnique", func(t *testing.T) {
		a, err := CreatePrescription(db, &models.Prescription{
			PatientID: patient.ID,
			DoctorID:  doctor.ID,
			Items:     []models.PrescriptionItem{{MedicineID: paracetamol.ID, Quantity: 1}},
		})
		assert.NoError(t, err)

		b, err := CreatePrescription(db, &models.Prescription{
			PatientID: patient.ID,
			DoctorID:  doctor.ID,
			Items:     []models.PrescriptionItem{{MedicineID: paracetamol.ID, Quantity: 1}},
		})
		assert.NoError(t, err)
		assert.NotEqual(t, a.PublicID, b.PublicID)
	})

	t.Run("EmptyItemsRejected", func(t *testing.T) {
		var before int64
		db.Model(&models.Prescription{}).Count(&before)

		_, err := CreatePrescription(db, &models.Prescription{
			PatientID: patient.ID,
			DoctorID:  doctor.ID,
		})
		assert.True(t, IsValidationError(err))

		// Nothing persisted
		var after int64
		db.Model(&models.Prescription{}).Count(&after)
		assert.Equal(t, before, after)
	})

	t.Run("GetUnknownID", func(t *testing.T) {
		_, err := GetPrescriptionByID(db, 99999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DeleteRemovesItemsAndParent", func(t *testing.T) {
		created, err := CreatePrescription(db, &models.Prescription{
			PatientID: patient.ID,
			DoctorID:  doctor.ID,
			Items: []models.PrescriptionItem{
				{MedicineID: paracetamol.ID, Quantity: 10},
				{MedicineID: ibuprofen.ID, Quantity: 5},
			},
		})
		assert.NoError(t, err)

		err = DeletePrescription(db, created.ID)
		assert.NoError(t, err)

		_, err = GetPrescriptionByID(db, created.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		var itemCount int64
		db.Model(&models.PrescriptionItem{}).Where("prescription_id = ?", created.ID).Count(&itemCount)
		assert.Equal(t, int64(0), itemCount)
	})

	t.Run("DeleteUnknownID", func(t *testing.T) {
		err := DeletePrescription(db, 99999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ListNewestFirst", func(t *testing.T) {
		list, err := GetPrescriptions(db)
		assert.NoError(t, err)
		assert.NotEmpty(t, list)
		for i := 1; i < len(list); i++ {
			assert.False(t, list[i-1].CreatedAt.Before(list[i].CreatedAt))
		}
	})
}
