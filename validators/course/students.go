package courseValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// AddStudentsPayload is the validated body for the bulk enrollment endpoint.
type AddStudentsPayload struct {
	Emails []string // input order preserved
}

// AddStudents validator middleware
func AddStudents() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := new(struct {
			StudentsCourses []struct {
				StudentEmail string `json:"student_email"`
			} `json:"students_courses"`
		})
		if err := c.BodyParser(body); err != nil {
			return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request body.")
		}

		if body.StudentsCourses == nil {
			return middleware.ValidationErrorResponse(c, map[string][]string{
				"students_courses": {"This field is required."},
			})
		}

		payload := &AddStudentsPayload{Emails: make([]string, 0, len(body.StudentsCourses))}
		for _, entry := range body.StudentsCourses {
			if strings.TrimSpace(entry.StudentEmail) == "" {
				return middleware.ValidationErrorResponse(c, map[string][]string{
					"student_email": {"This field is required."},
				})
			}
			payload.Emails = append(payload.Emails, entry.StudentEmail)
		}

		c.Locals("validatedStudents", payload)
		return c.Next()
	}
}
