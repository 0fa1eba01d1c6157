package handlers

import (
	"net/http"

	"hospital_app_go/db"
	"hospital_app_go/models"
	"hospital_app_go/services"

	"github.com/labstack/echo/v4"
)

// CreateLabOrderHandler creates a laboratory test request
func CreateLabOrderHandler(c echo.Context) error {
	var req struct {
		PatientID     uint    `json:"patient_id"`
		DoctorID      *uint   `json:"doctor_id"`
		AppointmentID *uint   `json:"appointment_id"`
		TestName      string  `json:"test_name"`
		Notes         *string `json:"notes"`
	}

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if req.PatientID == 0 || req.TestName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id and test_name are required")
	}

	order := &models.LabOrder{
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		AppointmentID: req.AppointmentID,
		TestName:      req.TestName,
		Notes:         req.Notes,
	}

	created, err := services.CreateLabOrder(db.DB, order)
	if err != nil {
		return serviceError(err, "Lab order not found", "creating lab order")
	}
	return respond(c, http.StatusCreated, "Lab order created", created)
}

// GetLabOrdersHandler returns all lab orders, most recent first
func GetLabOrdersHandler(c echo.Context) error {
	orders, err := services.GetLabOrders(db.DB)
	if err != nil {
		return serviceError(err, "", "fetching lab orders")
	}
	return respond(c, http.StatusOK, "OK", orders)
}

// GetLabOrderHandler returns one lab order
func GetLabOrderHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	order, err := services.GetLabOrderByID(db.DB, id)
	if err != nil {
		return serviceError(err, "Lab order not found", "fetching lab order")
	}
	return respond(c, http.StatusOK, "OK", order)
}

// UpdateLabOrderHandler updates status/notes of a lab order
func UpdateLabOrderHandler(c echo.Context) error {
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

	order, err := services.UpdateLabOrder(db.DB, id, services.OrderUpdate{
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		return serviceError(err, "Lab order not found", "updating lab order")
	}
	return respond(c, http.StatusOK, "Lab order updated", order)
}

// DeleteLabOrderHandler removes a lab order
func DeleteLabOrderHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := services.DeleteLabOrder(db.DB, id); err != nil {
		return serviceError(err, "Lab order not found", "deleting lab order")
	}
	return respond(c, http.StatusOK, "Lab order deleted", nil)
}
