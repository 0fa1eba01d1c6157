package handlers

import (
	"net/http"

	"hospital_app_go/db"
	"hospital_app_go/models"
	"hospital_app_go/services"

	"github.com/labstack/echo/v4"
)

// CreateMedicineHandler adds a medicine to the catalog
func CreateMedicineHandler(c echo.Context) error {
	var req struct {
		Name      string   `json:"name"`
		Strength  *string  `json:"strength"`
		Form      *string  `json:"form"`
		Stock     int      `json:"stock"`
		UnitPrice *float64 `json:"unit_price"`
	}

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	medicine := &models.Medicine{
		Name:      req.Name,
		Strength:  req.Strength,
		Form:      req.Form,
		Stock:     req.Stock,
		UnitPrice: req.UnitPrice,
	}

	if err := services.CreateMedicine(db.DB, medicine); err != nil {
		return serviceError(err, "Medicine not found", "creating medicine")
	}
	return respond(c, http.StatusCreated, "Medicine created", medicine)
}

// GetMedicinesHandler returns the medicine catalog
func GetMedicinesHandler(c echo.Context) error {
	medicines, err := services.GetMedicines(db.DB)
	if err != nil {
		return serviceError(err, "", "fetching medicines")
	}
	return respond(c, http.StatusOK, "OK", medicines)
}

// GetMedicineHandler returns one catalog item
func GetMedicineHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	medicine, err := services.GetMedicineByID(db.DB, id)
	if err != nil {
		return serviceError(err, "Medicine not found", "fetching medicine")
	}
	return respond(c, http.StatusOK, "OK", medicine)
}

// UpdateMedicineHandler applies a partial update to a catalog item
func UpdateMedicineHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req struct {
		Name      *string  `json:"name"`
		Strength  *string  `json:"strength"`
		Form      *string  `json:"form"`
		Stock     *int     `json:"stock"`
		UnitPrice *float64 `json:"unit_price"`
	}

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	changes := map[string]interface{}{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Strength != nil {
		changes["strength"] = *req.Strength
	}
	if req.Form != nil {
		changes["form"] = *req.Form
	}
	if req.Stock != nil {
		changes["stock"] = *req.Stock
	}
	if req.UnitPrice != nil {
		changes["unit_price"] = *req.UnitPrice
	}

	medicine, err := services.UpdateMedicine(db.DB, id, changes)
	if err != nil {
		return serviceError(err, "Medicine not found", "updating medicine")
	}
	return respond(c, http.StatusOK, "Medicine updated", medicine)
}

// DeleteMedicineHandler removes a catalog item
func DeleteMedicineHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := services.DeleteMedicine(db.DB, id); err != nil {
		return serviceError(err, "Medicine not found", "deleting medicine")
	}
	return respond(c, http.StatusOK, "Medicine deleted", nil)
}
