package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"hospital_app_go/db"
	"hospital_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestPrescriptionHandlers(t *testing.T) {
	cfg := setupHandlerTest(t)
	patient := seedPatient(t, "Carol Green", "carol@test.com")
	doctor := seedDoctor(t, "Dr. Dan Brown", "dan@test.com")
	medicine := seedMedicine(t, "Amoxicillin")

	createBody := func() map[string]interface{} {
		return map[string]interface{}{
			"patient_id": patient.ID,
			"doctor_id":  doctor.ID,
			"items": []map[string]interface{}{
				{
					"medicine_id":   medicine.ID,
					"dosage":        "1-0-1",
					"quantity":      14,
					"duration_days": 7,
				},
			},
		}
	}

	t.Run("CreateWithItems", func(t *testing.T) {
		c, rec := jsonContext(t, cfg, http.MethodPost, "/api/prescriptions", createBody())

		assert.NoError(t, CreatePrescriptionHandler(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.Equal(t, "Prescription created", env.Message)

		var p models.Prescription
		assert.NoError(t, json.Unmarshal(env.Data, &p))
		assert.NotEmpty(t, p.PublicID)
		assert.Len(t, p.Items, 1)
		assert.Equal(t, "Amoxicillin", p.Items[0].Medicine.Name)
	})

	t.Run("MissingItemsRejected", func(t *testing.T) {
		c, _ := jsonContext(t, cfg, http.MethodPost, "/api/prescriptions", map[string]interface{}{
			"patient_id": patient.ID,
			"doctor_id":  doctor.ID,
		})

		err := CreatePrescriptionHandler(c)
		assert.Equal(t, http.StatusBadRequest, httpErrorCode(t, err))
	})

	t.Run("GetByID", func(t *testing.T) {
		c, rec := jsonContext(t, cfg, http.MethodPost, "/api/prescriptions", createBody())
		assert.NoError(t, CreatePrescriptionHandler(c))

		var created models.Prescription
		assert.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &created))

		c, rec = jsonContext(t, cfg, http.MethodGet, "/api/prescriptions/"+strconv.Itoa(int(created.ID)), nil)
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(int(created.ID)))

		assert.NoError(t, GetPrescriptionHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var fetched models.Prescription
		assert.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &fetched))
		assert.Equal(t, created.PublicID, fetched.PublicID)
		assert.Equal(t, "Carol Green", fetched.Patient.User.Name)
	})

	t.Run("GetUnknownID", func(t *testing.T) {
		c, _ := jsonContext(t, cfg, http.MethodGet, "/api/prescriptions/9999", nil)
		c.SetParamNames("id")
		c.SetParamValues("9999")

		err := GetPrescriptionHandler(c)
		assert.Equal(t, http.StatusNotFound, httpErrorCode(t, err))
	})

	t.Run("DeleteRemovesItems", func(t *testing.T) {
		c, rec := jsonContext(t, cfg, http.MethodPost, "/api/prescriptions", createBody())
		assert.NoError(t, CreatePrescriptionHandler(c))

		var created models.Prescription
		assert.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &created))

		c, rec = jsonContext(t, cfg, http.MethodDelete, "/api/prescriptions/"+strconv.Itoa(int(created.ID)), nil)
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(int(created.ID)))

		assert.NoError(t, DeletePrescriptionHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Prescription deleted", decodeEnvelope(t, rec).Message)

		var itemCount int64
		db.DB.Model(&models.PrescriptionItem{}).Where("prescription_id = ?", created.ID).Count(&itemCount)
		assert.Equal(t, int64(0), itemCount)
	})
}
