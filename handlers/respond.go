package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hospital_app_go/config"
	"hospital_app_go/services"

	"github.com/labstack/echo/v4"
)

// respond writes the uniform success envelope: {"message": ..., "data": ...}.
// Errors go through echo.NewHTTPError, which renders {"message": ...}.
func respond(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, echo.Map{
		"message": message,
		"data":    data,
	})
}

// serviceError translates service-layer errors into HTTP errors. Validation
// messages reach the client; anything unexpected is logged with context and
// collapsed to a generic 500.
func serviceError(err error, notFoundMessage, logContext string) error {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return echo.NewHTTPError(http.StatusBadRequest, ve.Message)
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, notFoundMessage)
	}
	log.Printf("Error %s: %v", logContext, err)
	return echo.NewHTTPError(http.StatusInternalServerError, "Server error")
}

// parseID parses the :id path parameter
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid id")
	}
	return uint(id), nil
}

// getConfig pulls the config injected into the context by main.go
func getConfig(c echo.Context) *config.Config {
	if cfg, ok := c.Get("config").(*config.Config); ok {
		return cfg
	}
	return nil
}
