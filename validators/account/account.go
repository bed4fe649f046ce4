package accountValidator

import (
	"strings"

	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// RegisterPayload is the validated body for account registration.
type RegisterPayload struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	IsSuperuser bool   `json:"is_superuser"`
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request body.")
		}

		errors := make(map[string][]string)

		// Validate Username
		if strings.TrimSpace(reqData.Username) == "" {
			errors["username"] = append(errors["username"], "This field is required.")
		} else if len(reqData.Username) > 150 {
			errors["username"] = append(errors["username"], "Ensure this field has no more than 150 characters.")
		}

		// Validate Email
		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = append(errors["email"], "This field is required.")
		} else if validate.Var(reqData.Email, "email") != nil {
			errors["email"] = append(errors["email"], "Enter a valid email address.")
		} else if len(reqData.Email) > 100 {
			errors["email"] = append(errors["email"], "Ensure this field has no more than 100 characters.")
		}

		// Validate Password
		if reqData.Password == "" {
			errors["password"] = append(errors["password"], "This field is required.")
		} else if len(reqData.Password) > 128 {
			errors["password"] = append(errors["password"], "Ensure this field has no more than 128 characters.")
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// LoginPayload is the validated body for login.
type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request body.")
		}

		errors := make(map[string][]string)

		if reqData.Username == "" {
			errors["username"] = append(errors["username"], "This field is required.")
		}
		if reqData.Password == "" {
			errors["password"] = append(errors["password"], "This field is required.")
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// RefreshPayload is the validated body for token refresh.
type RefreshPayload struct {
	Refresh string `json:"refresh"`
}

// Refresh validator middleware
func Refresh() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RefreshPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request body.")
		}

		if reqData.Refresh == "" {
			return middleware.ValidationErrorResponse(c, map[string][]string{
				"refresh": {"This field is required."},
			})
		}

		c.Locals("validatedRefresh", reqData)
		return c.Next()
	}
}
