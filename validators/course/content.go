package courseValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ContentParams parses the :course_id and :content_id path parameters with
// the resource-specific not-found messages the content endpoints use.
func ContentParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := uuid.Parse(strings.TrimSpace(c.Params("course_id")))
		if err != nil {
			return middleware.DetailResponse(c, fiber.StatusNotFound, "course not found.")
		}
		c.Locals("courseID", courseID)

		if raw := strings.TrimSpace(c.Params("content_id")); raw != "" {
			contentID, err := uuid.Parse(raw)
			if err != nil {
				return middleware.DetailResponse(c, fiber.StatusNotFound, "content not found.")
			}
			c.Locals("contentID", contentID)
		}

		return c.Next()
	}
}

// CreateContentPayload is the validated body for content creation.
type CreateContentPayload struct {
	Name     string
	Content  string
	VideoURL *string
}

// CreateContent validator middleware
func CreateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := new(struct {
			Name     string  `json:"name"`
			Content  string  `json:"content"`
			VideoURL *string `json:"video_url"`
		})
		if err := c.BodyParser(body); err != nil {
			return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request body.")
		}

		errors := make(map[string][]string)

		if strings.TrimSpace(body.Name) == "" {
			errors["name"] = append(errors["name"], "This field is required.")
		} else if len(body.Name) > 150 {
			errors["name"] = append(errors["name"], "Ensure this field has no more than 150 characters.")
		}

		if strings.TrimSpace(body.Content) == "" {
			errors["content"] = append(errors["content"], "This field is required.")
		}

		if body.VideoURL != nil && len(*body.VideoURL) > 200 {
			errors["video_url"] = append(errors["video_url"], "Ensure this field has no more than 200 characters.")
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContent", &CreateContentPayload{
			Name:     body.Name,
			Content:  body.Content,
			VideoURL: body.VideoURL,
		})
		return c.Next()
	}
}

// UpdateContentPayload is the validated body for partial content updates.
// Nil fields were absent from the request.
type UpdateContentPayload struct {
	Name        string
	Content     string
	VideoURL    *string
	SetVideoURL bool
}

// UpdateContent validator middleware
func UpdateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := new(struct {
			Name     *string `json:"name"`
			Content  *string `json:"content"`
			VideoURL *string `json:"video_url"`
		})
		if err := c.BodyParser(body); err != nil {
			return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request body.")
		}

		errors := make(map[string][]string)
		payload := new(UpdateContentPayload)

		if body.Name != nil {
			if strings.TrimSpace(*body.Name) == "" {
				errors["name"] = append(errors["name"], "This field may not be blank.")
			} else if len(*body.Name) > 150 {
				errors["name"] = append(errors["name"], "Ensure this field has no more than 150 characters.")
			} else {
				payload.Name = *body.Name
			}
		}

		if body.Content != nil {
			if strings.TrimSpace(*body.Content) == "" {
				errors["content"] = append(errors["content"], "This field may not be blank.")
			} else {
				payload.Content = *body.Content
			}
		}

		if body.VideoURL != nil {
			payload.SetVideoURL = true
			if len(*body.VideoURL) > 200 {
				errors["video_url"] = append(errors["video_url"], "Ensure this field has no more than 200 characters.")
			} else {
				payload.VideoURL = body.VideoURL
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContentUpdate", payload)
		return c.Next()
	}
}
