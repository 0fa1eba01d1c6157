package handlers

import (
	"net/http"
	"time"

	"hospital_app_go/db"
	"hospital_app_go/models"
	"hospital_app_go/services"

	"github.com/labstack/echo/v4"
)

// CreatePatientHandler registers a patient together with its user record
func CreatePatientHandler(c echo.Context) error {
	var req struct {
		Name        string  `json:"name"`
		Email       string  `json:"email"`
		Phone       *string `json:"phone"`
		DateOfBirth *string `json:"date_of_birth"` // YYYY-MM-DD
		Gender      *string `json:"gender"`
		BloodGroup  *string `json:"blood_group"`
		Address     *string `json:"address"`
	}

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if req.Name == "" || req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and email are required")
	}

	patient := &models.Patient{
		User: models.User{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
			Role:  models.RolePatient,
		},
		Gender:     req.Gender,
		BloodGroup: req.BloodGroup,
		Address:    req.Address,
	}

	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid date_of_birth (use YYYY-MM-DD)")
		}
		patient.DateOfBirth = &dob
	}

	created, err := services.CreatePatient(db.DB, patient)
	if err != nil {
		return serviceError(err, "Patient not found", "creating patient")
	}
	return respond(c, http.StatusCreated, "Patient created", created)
}

// GetPatientsHandler returns all patients, most recent first
func GetPatientsHandler(c echo.Context) error {
	patients, err := services.GetPatients(db.DB)
	if err != nil {
		return serviceError(err, "", "fetching patients")
	}
	return respond(c, http.StatusOK, "OK", patients)
}

// GetPatientHandler returns one patient
func GetPatientHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	patient, err := services.GetPatientByID(db.DB, id)
	if err != nil {
		return serviceError(err, "Patient not found", "fetching patient")
	}
	return respond(c, http.StatusOK, "OK", patient)
}

// UpdatePatientHandler applies a partial update across patient and user fields
func UpdatePatientHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req struct {
		Name       *string `json:"name"`
		Email      *string `json:"email"`
		Phone      *string `json:"phone"`
		Gender     *string `json:"gender"`
		BloodGroup *string `json:"blood_group"`
		Address    *string `json:"address"`
	}

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	updated, err := services.UpdatePatient(db.DB, id, services.PatientUpdate{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Gender:     req.Gender,
		BloodGroup: req.BloodGroup,
		Address:    req.Address,
	})
	if err != nil {
		return serviceError(err, "Patient not found", "updating patient")
	}
	return respond(c, http.StatusOK, "Patient updated", updated)
}

// DeletePatientHandler removes a patient (soft delete; the user row is kept)
func DeletePatientHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := services.DeletePatient(db.DB, id); err != nil {
		return serviceError(err, "Patient not found", "deleting patient")
	}
	return respond(c, http.StatusOK, "Patient deleted", nil)
}

// PatientImportTemplateHandler serves the xlsx template for bulk registration
func PatientImportTemplateHandler(c echo.Context) error {
	buf, err := services.GeneratePatientImportTemplate()
	if err != nil {
		return serviceError(err, "", "generating patient import template")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="patient_import_template.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// ImportPatientsHandler registers patients in bulk from an uploaded template
func ImportPatientsHandler(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	result, err := services.ImportPatients(db.DB, file)
	if err != nil {
		return serviceError(err, "", "importing patients")
	}
	return respond(c, http.StatusOK, "Import completed", result)
}
