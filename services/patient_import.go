package services

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"hospital_app_go/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const patientImportSheet = "Patients"

// ImportResult contains the summary of the import process
type ImportResult struct {
	TotalProcessed int      `json:"total_processed"`
	SuccessCount   int      `json:"success_count"`
	FailedCount    int      `json:"failed_count"`
	Errors         []string `json:"errors,omitempty"`
}

// GeneratePatientImportTemplate builds the Excel template for bulk patient
// registration. Column order must match ImportPatients.
func GeneratePatientImportTemplate() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", patientImportSheet)

	headers := []string{
		"Name*",                     // A
		"Email*",                    // B
		"Phone",                     // C
		"Date of Birth (YYYY-MM-DD)", // D
		"Gender",                    // E
		"Blood Group",               // F
		"Address",                   // G
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(patientImportSheet, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(patientImportSheet, "A1", "G1", headerStyle)
	f.SetColWidth(patientImportSheet, "A", "G", 24)

	// Example row
	f.SetCellValue(patientImportSheet, "A2", "Jane Doe")
	f.SetCellValue(patientImportSheet, "B2", "jane.doe@example.com")
	f.SetCellValue(patientImportSheet, "C2", "+1 555 0100")
	f.SetCellValue(patientImportSheet, "D2", "1985-04-12")
	f.SetCellValue(patientImportSheet, "E2", "FEMALE")
	f.SetCellValue(patientImportSheet, "F2", "O+")
	f.SetCellValue(patientImportSheet, "G2", "12 Main St")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write template: %w", err)
	}
	return &buf, nil
}

// ImportPatients reads an uploaded template and registers one patient per row.
// Rows fail independently; the summary reports per-row errors by row number.
func ImportPatients(db *gorm.DB, reader io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, NewValidationError("file is not a valid Excel workbook")
	}
	defer f.Close()

	rows, err := f.GetRows(patientImportSheet)
	if err != nil {
		// Fall back to the first sheet for workbooks saved under another name
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, NewValidationError("workbook has no sheets")
		}
		rows, err = f.GetRows(sheets[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet: %w", err)
		}
	}

	result := &ImportResult{}

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		rowNum := i + 1

		cell := func(idx int) string {
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		name, email := cell(0), cell(1)
		if name == "" && email == "" {
			continue // blank row
		}
		result.TotalProcessed++

		if name == "" || email == "" {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: name and email are required", rowNum))
			continue
		}

		patient := models.Patient{
			User: models.User{
				Name:  name,
				Email: email,
				Role:  models.RolePatient,
			},
		}
		if phone := cell(2); phone != "" {
			patient.User.Phone = &phone
		}
		if dobStr := cell(3); dobStr != "" {
			dob, perr := time.Parse("2006-01-02", dobStr)
			if perr != nil {
				result.FailedCount++
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid date of birth %q", rowNum, dobStr))
				continue
			}
			patient.DateOfBirth = &dob
		}
		if gender := cell(4); gender != "" {
			patient.Gender = &gender
		}
		if bg := cell(5); bg != "" {
			patient.BloodGroup = &bg
		}
		if addr := cell(6); addr != "" {
			patient.Address = &addr
		}

		if _, err := CreatePatient(db, &patient); err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		result.SuccessCount++
	}

	return result, nil
}
