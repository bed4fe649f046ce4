package courseValidator

import (
	"fmt"
	"strings"
	"time"

	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// CourseParam parses the :course_id path parameter.
func CourseParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := uuid.Parse(strings.TrimSpace(c.Params("course_id")))
		if err != nil {
			return middleware.DetailResponse(c, fiber.StatusNotFound, "Not found.")
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CreateCoursePayload is the validated body for course creation.
type CreateCoursePayload struct {
	Name         string
	Status       string
	StartDate    datatypes.Date
	EndDate      datatypes.Date
	InstructorID *uuid.UUID
}

type courseBody struct {
	Name       string  `json:"name"`
	Status     string  `json:"status"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Instructor *string `json:"instructor"`
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := new(courseBody)
		if err := c.BodyParser(body); err != nil {
			return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request body.")
		}

		errors := make(map[string][]string)
		payload := &CreateCoursePayload{Status: models.CourseNotStarted}

		// Validate Name
		if strings.TrimSpace(body.Name) == "" {
			errors["name"] = append(errors["name"], "This field is required.")
		} else if len(body.Name) > 100 {
			errors["name"] = append(errors["name"], "Ensure this field has no more than 100 characters.")
		} else {
			payload.Name = body.Name
		}

		// Validate Status
		if body.Status != "" {
			if !models.IsValidCourseStatus(body.Status) {
				errors["status"] = append(errors["status"], fmt.Sprintf("%q is not a valid choice.", body.Status))
			} else {
				payload.Status = body.Status
			}
		}

		// Validate dates
		if date, fieldErrs := parseDate(body.StartDate); len(fieldErrs) > 0 {
			errors["start_date"] = fieldErrs
		} else {
			payload.StartDate = date
		}
		if date, fieldErrs := parseDate(body.EndDate); len(fieldErrs) > 0 {
			errors["end_date"] = fieldErrs
		} else {
			payload.EndDate = date
		}

		// Validate Instructor
		if body.Instructor != nil && *body.Instructor != "" {
			instructorID, err := uuid.Parse(*body.Instructor)
			if err != nil {
				errors["instructor"] = append(errors["instructor"], "Must be a valid UUID.")
			} else {
				payload.InstructorID = &instructorID
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", payload)
		return c.Next()
	}
}

// UpdateCoursePayload is the validated body for partial course updates.
// Nil fields were absent from the request.
type UpdateCoursePayload struct {
	Name          string
	Status        string
	StartDate     *datatypes.Date
	EndDate       *datatypes.Date
	InstructorID  *uuid.UUID
	SetInstructor bool
}

// UpdateCourse validator middleware
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := new(struct {
			Name       *string `json:"name"`
			Status     *string `json:"status"`
			StartDate  *string `json:"start_date"`
			EndDate    *string `json:"end_date"`
			Instructor *string `json:"instructor"`
		})
		if err := c.BodyParser(body); err != nil {
			return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request body.")
		}

		errors := make(map[string][]string)
		payload := new(UpdateCoursePayload)

		if body.Name != nil {
			if strings.TrimSpace(*body.Name) == "" {
				errors["name"] = append(errors["name"], "This field may not be blank.")
			} else if len(*body.Name) > 100 {
				errors["name"] = append(errors["name"], "Ensure this field has no more than 100 characters.")
			} else {
				payload.Name = *body.Name
			}
		}

		if body.Status != nil {
			if !models.IsValidCourseStatus(*body.Status) {
				errors["status"] = append(errors["status"], fmt.Sprintf("%q is not a valid choice.", *body.Status))
			} else {
				payload.Status = *body.Status
			}
		}

		if body.StartDate != nil {
			if date, fieldErrs := parseDate(*body.StartDate); len(fieldErrs) > 0 {
				errors["start_date"] = fieldErrs
			} else {
				payload.StartDate = &date
			}
		}
		if body.EndDate != nil {
			if date, fieldErrs := parseDate(*body.EndDate); len(fieldErrs) > 0 {
				errors["end_date"] = fieldErrs
			} else {
				payload.EndDate = &date
			}
		}

		if body.Instructor != nil {
			payload.SetInstructor = true
			if *body.Instructor != "" {
				instructorID, err := uuid.Parse(*body.Instructor)
				if err != nil {
					errors["instructor"] = append(errors["instructor"], "Must be a valid UUID.")
				} else {
					payload.InstructorID = &instructorID
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", payload)
		return c.Next()
	}
}

func parseDate(value string) (datatypes.Date, []string) {
	if strings.TrimSpace(value) == "" {
		return datatypes.Date{}, []string{"This field is required."}
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return datatypes.Date{}, []string{"Date has wrong format. Use one of these formats instead: YYYY-MM-DD."}
	}
	return datatypes.Date(parsed), nil
}
