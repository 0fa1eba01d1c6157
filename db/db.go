package db

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the process-wide handle set once at startup. Services take a *gorm.DB
// parameter; this global exists only for handler wiring and is swapped for an
// in-memory database in tests.
var DB *gorm.DB

// Initialize opens the database connection. A non-empty databaseURL selects
// postgres; otherwise a local sqlite file with WAL mode is used.
func Initialize(dbPath, databaseURL, environment string) error {
	var err error

	// Determine log level based on environment
	logLevel := logger.Info
	if environment == "production" {
		logLevel = logger.Warn
	}

	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Portable duplicate-key detection for the department upsert
		TranslateError: true,
	}

	if databaseURL != "" {
		DB, err = gorm.Open(postgres.Open(databaseURL), cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		log.Println("Database connection established (postgres)")
		return nil
	}

	// Enable WAL mode for better concurrency support
	dsn := dbPath + "?_journal_mode=WAL"
	DB, err = gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established (sqlite, WAL mode enabled)")
	return nil
}

// AutoMigrate runs database migrations for the provided models
func AutoMigrate(models ...interface{}) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	if err := DB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
