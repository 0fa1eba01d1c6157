package main

import (
	"log"

	"hospital_app_go/config"
	"hospital_app_go/db"
	"hospital_app_go/handlers"
	"hospital_app_go/models"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.DatabaseURL, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.Patient{},
		&models.Doctor{},
		&models.Appointment{},
		&models.Medicine{},
		&models.Prescription{},
		&models.PrescriptionItem{},
		&models.LabOrder{},
		&models.RadiologyOrder{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Health
	e.GET("/", func(c echo.Context) error {
		return c.String(200, "Hospital Management Backend Running")
	})

	api := e.Group("/api")
	{
		appointments := api.Group("/appointments")
		appointments.POST("", handlers.CreateAppointmentHandler)
		appointments.GET("", handlers.GetAppointmentsHandler)
		appointments.GET("/:id", handlers.GetAppointmentHandler)
		appointments.PUT("/:id", handlers.UpdateAppointmentHandler)
		appointments.DELETE("/:id", handlers.DeleteAppointmentHandler)

		prescriptions := api.Group("/prescriptions")
		prescriptions.POST("", handlers.CreatePrescriptionHandler)
		prescriptions.GET("", handlers.GetPrescriptionsHandler)
		prescriptions.GET("/:id", handlers.GetPrescriptionHandler)
		prescriptions.DELETE("/:id", handlers.DeletePrescriptionHandler)

		patients := api.Group("/patients")
		patients.POST("", handlers.CreatePatientHandler)
		patients.GET("", handlers.GetPatientsHandler)
		patients.GET("/import/template", handlers.PatientImportTemplateHandler)
		patients.POST("/import", handlers.ImportPatientsHandler)
		patients.GET("/:id", handlers.GetPatientHandler)
		patients.PUT("/:id", handlers.UpdatePatientHandler)
		patients.DELETE("/:id", handlers.DeletePatientHandler)

		medicines := api.Group("/medicines")
		medicines.POST("", handlers.CreateMedicineHandler)
		medicines.GET("", handlers.GetMedicinesHandler)
		medicines.GET("/:id", handlers.GetMedicineHandler)
		medicines.PUT("/:id", handlers.UpdateMedicineHandler)
		medicines.DELETE("/:id", handlers.DeleteMedicineHandler)

		labOrders := api.Group("/lab-orders")
		labOrders.POST("", handlers.CreateLabOrderHandler)
		labOrders.GET("", handlers.GetLabOrdersHandler)
		labOrders.GET("/:id", handlers.GetLabOrderHandler)
		labOrders.PUT("/:id", handlers.UpdateLabOrderHandler)
		labOrders.DELETE("/:id", handlers.DeleteLabOrderHandler)

		radiologyOrders := api.Group("/radiology-orders")
		radiologyOrders.POST("", handlers.CreateRadiologyOrderHandler)
		radiologyOrders.GET("", handlers.GetRadiologyOrdersHandler)
		radiologyOrders.GET("/:id", handlers.GetRadiologyOrderHandler)
		radiologyOrders.PUT("/:id", handlers.UpdateRadiologyOrderHandler)
		radiologyOrders.DELETE("/:id", handlers.DeleteRadiologyOrderHandler)
	}

	// MCP tool-discovery surface (clients send POST for the manifest; GET kept
	// for browsers)
	e.GET("/mcp/manifest", handlers.McpManifestHandler)
	e.POST("/mcp/manifest", handlers.McpManifestHandler)
	e.GET("/mcp/registry", handlers.McpRegistryHandler)

	log.Printf("Starting server on port %s (%s)", cfg.ServerPort, cfg.Environment)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
