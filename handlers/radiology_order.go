package handlers

import (
	"net/http"

	"hospital_app_go/db"
	"hospital_app_go/models"
	"hospital_app_go/services"

	"github.com/labstack/echo/v4"
)

// CreateRadiologyOrderHandler creates an imaging request
func CreateRadiologyOrderHandler(c echo.Context) error {
	var req struct {
		PatientID     uint    `json:"patient_id"`
		DoctorID      *uint   `json:"doctor_id"`
		AppointmentID *uint   `json:"appointment_id"`
		ScanType      string  `json:"scan_type"`
		BodyPart      *string `json:"body_part"`
		Notes         *string `json:"notes"`
	}

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if req.PatientID == 0 || req.ScanType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id and scan_type are required")
	}

	order := &models.RadiologyOrder{
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		AppointmentID: req.AppointmentID,
		ScanType:      req.ScanType,
		BodyPart:      req.BodyPart,
		Notes:         req.Notes,
	}

	created, err := services.CreateRadiologyOrder(db.DB, order)
	if err != nil {
		return serviceError(err, "Radiology order not found", "creating radiology order")
	}
	return respond(c, http.StatusCreated, "Radiology order created", created)
}

// GetRadiologyOrdersHandler returns all radiology orders, most recent first
func GetRadiologyOrdersHandler(c echo.Context) error {
	orders, err := services.GetRadiologyOrders(db.DB)
	if err != nil {
		return serviceError(err, "", "fetching radiology orders")
	}
	return respond(c, http.StatusOK, "OK", orders)
}

// GetRadiologyOrderHandler returns one radiology order
func GetRadiologyOrderHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	order, err := services.GetRadiologyOrderByID(db.DB, id)
	if err != nil {
		return serviceError(err, "Radiology order not found", "fetching radiology order")
	}
	return respond(c, http.StatusOK, "OK", order)
}

// UpdateRadiologyOrderHandler updates status/notes of a radiology order
func UpdateRadiologyOrderHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req struct {
		Status *string `json:"status"`
		Notes  *string `json:"notes"`
	}

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	order, err := services.UpdateRadiologyOrder(db.DB, id, services.OrderUpdate{
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		return serviceError(err, "Radiology order not found", "updating radiology order")
	}
	return respond(c, http.StatusOK, "Radiology order updated", order)
}

// DeleteRadiologyOrderHandler removes a radiology order
func DeleteRadiologyOrderHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := services.DeleteRadiologyOrder(db.DB, id); err != nil {
		return serviceError(err, "Radiology order not found", "deleting radiology order")
	}
	return respond(c, http.StatusOK, "Radiology order deleted", nil)
}
