package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"hospital_app_go/models"
	"hospital_app_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestPatientHandlers(t *testing.T) {
	cfg := setupHandlerTest(t)

	t.Run("CreateGeneratesMRN", func(t *testing.T) {
		c, rec := jsonContext(t, cfg, http.MethodPost, "/api/patients", map[string]interface{}{
			"name":          "Helen Park",
			"email":         "helen@test.com",
			"date_of_birth": "1990-06-15",
			"blood_group":   "A+",
		})

		assert.NoError(t, CreatePatientHandler(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var created models.Patient
		assert.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &created))
		assert.True(t, strings.HasPrefix(created.MRN, "MRN-"))
		assert.Equal(t, "Helen Park", created.User.Name)
		assert.Equal(t, "A+", *created.BloodGroup)
	})

	t.Run("BadDateOfBirthRejected", func(t *testing.T) {
		c, _ := jsonContext(t, cfg, http.MethodPost, "/api/patients", map[string]interface{}{
			"name":          "Ivan Cole",
			"email":         "ivan@test.com",
			"date_of_birth": "15/06/1990",
		})

		err := CreatePatientHandler(c)
		assert.Equal(t, http.StatusBadRequest, httpErrorCode(t, err))
	})

	t.Run("DuplicateEmailRejected", func(t *testing.T) {
		c, _ := jsonContext(t, cfg, http.MethodPost, "/api/patients", map[string]interface{}{
			"name":  "Helen Clone",
			"email": "helen@test.com",
		})

		err := CreatePatientHandler(c)
		assert.Equal(t, http.StatusBadRequest, httpErrorCode(t, err))
	})

	t.Run("UpdatePartial", func(t *testing.T) {
		patient := seedPatient(t, "Jack Reed", "jack@test.com")

		c, rec := jsonContext(t, cfg, http.MethodPut, "/api/patients/"+strconv.Itoa(int(patient.ID)), map[string]interface{}{
			"blood_group": "B-",
		})
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(int(patient.ID)))

		assert.NoError(t, UpdatePatientHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var updated models.Patient
		assert.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &updated))
		assert.Equal(t, "B-", *updated.BloodGroup)
		assert.Equal(t, "Jack Reed", updated.User.Name)
	})

	t.Run("DeleteThenNotFound", func(t *testing.T) {
		patient := seedPatient(t, "Kate Moss", "kate@test.com")
		id := strconv.Itoa(int(patient.ID))

		c, rec := jsonContext(t, cfg, http.MethodDelete, "/api/patients/"+id, nil)
		c.SetParamNames("id")
		c.SetParamValues(id)
		assert.NoError(t, DeletePatientHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		c, _ = jsonContext(t, cfg, http.MethodGet, "/api/patients/"+id, nil)
		c.SetParamNames("id")
		c.SetParamValues(id)
		err := GetPatientHandler(c)
		assert.Equal(t, http.StatusNotFound, httpErrorCode(t, err))
	})
}

func TestPatientImportHandlers(t *testing.T) {
	cfg := setupHandlerTest(t)

	t.Run("TemplateDownload", func(t *testing.T) {
		c, rec := jsonContext(t, cfg, http.MethodGet, "/api/patients/import/template", nil)

		assert.NoError(t, PatientImportTemplateHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "patient_import_template.xlsx")
		assert.NotZero(t, rec.Body.Len())
	})

	t.Run("ImportUploadedTemplate", func(t *testing.T) {
		template, err := services.GeneratePatientImportTemplate()
		assert.NoError(t, err)

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile("file", "patients.xlsx")
		assert.NoError(t, err)
		_, err = part.Write(template.Bytes())
		assert.NoError(t, err)
		assert.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/patients/import", &body)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)
		c.Set("config", cfg)

		assert.NoError(t, ImportPatientsHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		// The template ships with one example row
		var result services.ImportResult
		assert.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &result))
		assert.Equal(t, 1, result.TotalProcessed)
		assert.Equal(t, 1, result.SuccessCount)
	})

	t.Run("MissingFileRejected", func(t *testing.T) {
		c, _ := jsonContext(t, cfg, http.MethodPost, "/api/patients/import", nil)

		err := ImportPatientsHandler(c)
		assert.Equal(t, http.StatusBadRequest, httpErrorCode(t, err))
	})
}
