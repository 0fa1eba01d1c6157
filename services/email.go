package services

import (
	"fmt"
	"log"
	"strings"

	"hospital_app_go/config"
	"hospital_app_go/models"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	TextBody string
}

// BuildAppointmentConfirmationEmail builds the confirmation sent to a patient
// after an appointment is created. Returns nil when the patient has no email.
func BuildAppointmentConfirmationEmail(apt *models.Appointment) *Email {
	if apt.Patient.User.Email == "" {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", apt.Patient.User.Name)
	fmt.Fprintf(&b, "Your appointment %s has been scheduled.\n\n", apt.AppointmentNumber)
	fmt.Fprintf(&b, "Department: %s\n", apt.Department.Name)
	fmt.Fprintf(&b, "Date & time: %s\n", apt.ScheduledAt.Format("Mon, 02 Jan 2006 15:04 MST"))
	fmt.Fprintf(&b, "Duration: %d minutes\n", apt.DurationMins)
	if apt.Doctor != nil && apt.Doctor.User.Name != "" {
		fmt.Fprintf(&b, "Doctor: %s\n", apt.Doctor.User.Name)
	}
	if apt.Reason != nil && *apt.Reason != "" {
		fmt.Fprintf(&b, "Reason: %s\n", *apt.Reason)
	}
	b.WriteString("\nPlease arrive 15 minutes early. If you need to reschedule, contact the front desk.\n")

	return &Email{
		To:       []string{apt.Patient.User.Email},
		Subject:  fmt.Sprintf("Appointment confirmed: %s", apt.AppointmentNumber),
		TextBody: b.String(),
	}
}

// SendEmail sends an email via Resend, or logs it in test mode
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		log.Printf("[EMAIL test mode] To: %s | Subject: %s\n%s",
			strings.Join(email.To, ", "), email.Subject, email.TextBody)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}
	if email.TextBody == "" {
		return fmt.Errorf("email must have a body")
	}

	client := resend.NewClient(cfg.ResendAPIKey)
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Text:    email.TextBody,
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Email sent (id %s) to %s", sent.Id, strings.Join(email.To, ", "))
	return nil
}

// SendEmailAsync sends in a goroutine; delivery failures are logged, never
// surfaced to the request that triggered them.
func SendEmailAsync(cfg *config.Config, email *Email) {
	emailCopy := &Email{
		To:       append([]string{}, email.To...),
		Subject:  email.Subject,
		TextBody: email.TextBody,
	}

	go func() {
		if err := SendEmail(cfg, emailCopy); err != nil {
			log.Printf("Error sending async email: %v", err)
		}
	}()
}
