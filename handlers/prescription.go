package handlers

import (
	"net/http"

	"hospital_app_go/db"
	"hospital_app_go/models"
	"hospital_app_go/services"

	"github.com/labstack/echo/v4"
)

// CreatePrescriptionHandler creates a prescription with its line items in one unit
func CreatePrescriptionHandler(c echo.Context) error {
	var req struct {
		PrescriptionNumber *string `json:"prescription_number"`
		PatientID          uint    `json:"patient_id"`
		DoctorID           uint    `json:"doctor_id"`
		AppointmentID      *uint   `json:"appointment_id"`
		Notes              *string `json:"notes"`
		Items              []struct {
			MedicineID   uint    `json:"medicine_id"`
			Dosage       string  `json:"dosage"`
			Quantity     int     `json:"quantity"`
			DurationDays int     `json:"duration_days"`
			Instructions *string `json:"instructions"`
		} `json:"items"`
	}

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if req.PatientID == 0 || req.DoctorID == 0 || len(req.Items) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id, doctor_id and items are required")
	}

	p := &models.Prescription{
		PrescriptionNumber: req.PrescriptionNumber,
		PatientID:          req.PatientID,
		DoctorID:           req.DoctorID,
		AppointmentID:      req.AppointmentID,
		Notes:              req.Notes,
	}
	for _, item := range req.Items {
		p.Items = append(p.Items, models.PrescriptionItem{
			MedicineID:   item.MedicineID,
			Dosage:       item.Dosage,
			Quantity:     item.Quantity,
			DurationDays: item.DurationDays,
			Instructions: item.Instructions,
		})
	}

	created, err := services.CreatePrescription(db.DB, p)
	if err != nil {
		return serviceError(err, "Prescription not found", "creating prescription")
	}
	return respond(c, http.StatusCreated, "Prescription created", created)
}

// GetPrescriptionsHandler returns all prescriptions, most recent first
func GetPrescriptionsHandler(c echo.Context) error {
	prescriptions, err := services.GetPrescriptions(db.DB)
	if err != nil {
		return serviceError(err, "", "fetching prescriptions")
	}
	return respond(c, http.StatusOK, "OK", prescriptions)
}

// GetPrescriptionHandler returns one prescription with items and medicines
func GetPrescriptionHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	p, err := services.GetPrescriptionByID(db.DB, id)
	if err != nil {
		return serviceError(err, "Prescription not found", "fetching prescription")
	}
	return respond(c, http.StatusOK, "OK", p)
}

// DeletePrescriptionHandler hard-deletes a prescription and its line items
func DeletePrescriptionHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := services.DeletePrescription(db.DB, id); err != nil {
		return serviceError(err, "Prescription not found", "deleting prescription")
	}
	return respond(c, http.StatusOK, "Prescription deleted", nil)
}
