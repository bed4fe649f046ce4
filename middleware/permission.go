package middleware

import (
	"lms/database"
	"lms/models"
	"lms/permissions"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LoadActor fetches the authenticated account and stores it in the context.
// The JWT middleware must have run first.
func LoadActor(c *fiber.Ctx) (models.Account, error) {
	accountID, ok := c.Locals("accountId").(uuid.UUID)
	if !ok {
		return models.Account{}, fiber.ErrUnauthorized
	}

	var account models.Account
	if err := database.Database.Db.Where("id = ?", accountID).First(&account).Error; err != nil {
		return models.Account{}, fiber.ErrUnauthorized
	}

	c.Locals("account", account)
	return account, nil
}

// AdminOrReadOnly gates collection-level endpoints: superusers pass always,
// other actors only on safe methods.
func AdminOrReadOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		account, err := LoadActor(c)
		if err != nil {
			return DetailResponse(c, fiber.StatusUnauthorized, "Given token is not valid for any token type")
		}

		if !permissions.AdminOrReadOnly(account, c.Method()) {
			return DetailResponse(c, fiber.StatusForbidden, "You do not have permission to perform this action.")
		}

		return c.Next()
	}
}

// AdminOnly gates enrollment management, superuser-only including reads.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		account, err := LoadActor(c)
		if err != nil {
			return DetailResponse(c, fiber.StatusUnauthorized, "Given token is not valid for any token type")
		}

		if !permissions.EnrollmentManager(account) {
			return DetailResponse(c, fiber.StatusForbidden, "You do not have permission to perform this action.")
		}

		return c.Next()
	}
}
