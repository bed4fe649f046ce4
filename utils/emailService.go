package utils

import (
	"fmt"
	"log"

	"lms/config"
	"lms/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEnrollmentEmail notifies a student about a new pending enrollment.
// Best-effort: a delivery failure never fails the enrollment call.
func SendEnrollmentEmail(student models.Account, course models.Course) {
	if config.AppConfig.SendgridApiKey == "" {
		return
	}

	from := mail.NewEmail("Course Platform", config.AppConfig.EmailSender)
	to := mail.NewEmail(student.Username, student.Email)
	subject := fmt.Sprintf("You were added to %s", course.Name)
	plain := fmt.Sprintf(
		"Hi %s,\n\nYou were added to the course %s. Your enrollment is pending approval.\n",
		student.Username, course.Name,
	)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>You were added to the course <strong>%s</strong>. Your enrollment is pending approval.</p>",
		student.Username, course.Name,
	)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending enrollment email to %s: %v", student.Email, err)
		return
	}
	if resp.StatusCode >= 300 {
		log.Printf("Enrollment email to %s rejected with status %d", student.Email, resp.StatusCode)
	}
}
