package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"hospital_app_go/config"
	"hospital_app_go/db"
	"hospital_app_go/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupHandlerTest swaps db.DB for an in-memory database and returns a config
// wired for tests (email in test mode, registry in a temp dir).
func setupHandlerTest(t *testing.T) *config.Config {
	t.Helper()

	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	assert.NoError(t, err)

	err = testDB.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Doctor{},
		&models.Department{},
		&models.Appointment{},
		&models.Medicine{},
		&models.Prescription{},
		&models.PrescriptionItem{},
		&models.LabOrder{},
		&models.RadiologyOrder{},
	)
	assert.NoError(t, err)

	db.DB = testDB

	return &config.Config{
		EmailTestMode: true,
		RegistryDir:   t.TempDir(),
	}
}

// jsonContext builds an echo context carrying a JSON body and the config
func jsonContext(t *testing.T, cfg *config.Config, method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		assert.NoError(t, err)
	}

	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := echo.New().NewContext(req, rec)
	c.Set("config", cfg)
	return c, rec
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

// httpErrorCode asserts the handler returned an *echo.HTTPError and gives back
// its status code
func httpErrorCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok, "expected *echo.HTTPError, got %v", err)
	if !ok {
		return 0
	}
	return he.Code
}

func seedPatient(t *testing.T, name, email string) *models.Patient {
	t.Helper()
	patient := &models.Patient{
		User: models.User{Name: name, Email: email, Role: models.RolePatient},
	}
	assert.NoError(t, db.DB.Create(patient).Error)
	return patient
}

func seedDoctor(t *testing.T, name, email string) *models.Doctor {
	t.Helper()
	doctor := &models.Doctor{
		User: models.User{Name: name, Email: email, Role: models.RoleDoctor},
	}
	assert.NoError(t, db.DB.Create(doctor).Error)
	return doctor
}

func seedMedicine(t *testing.T, name string) *models.Medicine {
	t.Helper()
	medicine := &models.Medicine{Name: name}
	assert.NoError(t, db.DB.Create(medicine).Error)
	return medicine
}
