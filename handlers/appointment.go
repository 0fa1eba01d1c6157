package handlers

import (
	"net/http"
	"time"

	"hospital_app_go/db"
	"hospital_app_go/models"
	"hospital_app_go/services"

	"github.com/labstack/echo/v4"
)

// CreateAppointmentHandler creates a new appointment, resolving the department
// lookup row from its enum-like type code
func CreateAppointmentHandler(c echo.Context) error {
	var req struct {
		PatientID    uint    `json:"patient_id"`
		DoctorID     *uint   `json:"doctor_id"`
		Department   string  `json:"department"` // type code, e.g. "CARDIOLOGY"
		ScheduledAt  string  `json:"scheduled_at"` // RFC3339
		DurationMins int     `json:"duration_mins"`
		Status       string  `json:"status"`
		Reason       *string `json:"reason"`
		Notes        *string `json:"notes"`
		CreatedByID  *uint   `json:"created_by_id"`
	}

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if req.PatientID == 0 || req.Department == "" || req.ScheduledAt == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id, department and scheduled_at are required")
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid scheduled_at datetime (use RFC3339)")
	}

	apt := &models.Appointment{
		PatientID:    req.PatientID,
		DoctorID:     req.DoctorID,
		ScheduledAt:  scheduledAt,
		DurationMins: req.DurationMins,
		Status:       req.Status,
		Reason:       req.Reason,
		Notes:        req.Notes,
		CreatedByID:  req.CreatedByID,
	}

	created, err := services.CreateAppointment(db.DB, apt, req.Department)
	if err != nil {
		return serviceError(err, "Appointment not found", "creating appointment")
	}

	if cfg := getConfig(c); cfg != nil {
		if email := services.BuildAppointmentConfirmationEmail(created); email != nil {
			services.SendEmailAsync(cfg, email)
		}
	}

	return respond(c, http.StatusCreated, "Appointment created", created)
}

// GetAppointmentsHandler returns all non-deleted appointments, most recent first
func GetAppointmentsHandler(c echo.Context) error {
	appointments, err := services.GetAppointments(db.DB)
	if err != nil {
		return serviceError(err, "", "fetching appointments")
	}
	return respond(c, http.StatusOK, "OK", appointments)
}

// GetAppointmentHandler returns one appointment with its extended relation set
func GetAppointmentHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	apt, err := services.GetAppointmentByID(db.DB, id)
	if err != nil {
		return serviceError(err, "Appointment not found", "fetching appointment")
	}
	return respond(c, http.StatusOK, "OK", apt)
}

// UpdateAppointmentHandler applies a partial update; a department code in the
// payload re-resolves the lookup row
func UpdateAppointmentHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req struct {
		Department   *string `json:"department"`
		ScheduledAt  *string `json:"scheduled_at"`
		DoctorID     *uint   `json:"doctor_id"`
		DurationMins *int    `json:"duration_mins"`
		Status       *string `json:"status"`
		Reason       *string `json:"reason"`
		Notes        *string `json:"notes"`
	}

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	update := services.AppointmentUpdate{
		Department:   req.Department,
		DoctorID:     req.DoctorID,
		DurationMins: req.DurationMins,
		Status:       req.Status,
		Reason:       req.Reason,
		Notes:        req.Notes,
	}

	if req.ScheduledAt != nil {
		scheduledAt, perr := time.Parse(time.RFC3339, *req.ScheduledAt)
		if perr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid scheduled_at datetime (use RFC3339)")
		}
		update.ScheduledAt = &scheduledAt
	}

	updated, err := services.UpdateAppointment(db.DB, id, update)
	if err != nil {
		return serviceError(err, "Appointment not found", "updating appointment")
	}
	return respond(c, http.StatusOK, "Appointment updated", updated)
}

// DeleteAppointmentHandler soft-deletes an appointment; the row remains
// readable by id but drops out of the default listing
func DeleteAppointmentHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	deleted, err := services.SoftDeleteAppointment(db.DB, id)
	if err != nil {
		return serviceError(err, "Appointment not found", "deleting appointment")
	}
	return respond(c, http.StatusOK, "Appointment deleted", deleted)
}
