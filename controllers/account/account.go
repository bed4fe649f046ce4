package accountController

import (
	"log"
	"strings"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	accountValidator "lms/validators/account"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Register creates an account. The superuser flag is caller-chosen at
// creation time; there is no escalation path afterward.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*accountValidator.RegisterPayload)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data.")
	}

	db := database.Database.Db

	// Uniqueness checks run after field validation and are reported together
	errors := make(map[string][]string)
	if err := db.Where("username = ?", reqData.Username).First(&models.Account{}).Error; err == nil {
		errors["username"] = append(errors["username"], "A user with that username already exists.")
	}
	if err := db.Where("email = ?", reqData.Email).First(&models.Account{}).Error; err == nil {
		errors["email"] = append(errors["email"], "user with this email already exists.")
	}
	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to process your request.")
	}

	newAccount := models.Account{
		Username:    reqData.Username,
		Email:       reqData.Email,
		Password:    string(hashedPassword),
		IsSuperuser: reqData.IsSuperuser,
	}

	if err := db.Create(&newAccount).Error; err != nil {
		log.Printf("Error saving account to database: %v", err)
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to register account.")
	}

	go utils.SyncAccount(newAccount)

	return c.Status(fiber.StatusCreated).JSON(newAccount)
}

// Login verifies credentials and issues an access/refresh token pair.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*accountValidator.LoginPayload)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data.")
	}

	var account models.Account
	if err := database.Database.Db.Where("username = ?", reqData.Username).First(&account).Error; err != nil {
		return middleware.DetailResponse(c, fiber.StatusUnauthorized, "No active account found with the given credentials")
	}

	// Constant-time hash comparison
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(reqData.Password)); err != nil {
		return middleware.DetailResponse(c, fiber.StatusUnauthorized, "No active account found with the given credentials")
	}

	pair, err := middleware.GenerateTokenPair(account)
	if err != nil {
		log.Printf("Error generating token pair: %v", err)
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to generate token.")
	}

	return c.Status(fiber.StatusOK).JSON(pair)
}

// RefreshToken exchanges a valid refresh token for a new access token.
func RefreshToken(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRefresh").(*accountValidator.RefreshPayload)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data.")
	}

	accountID, err := middleware.VerifyRefreshToken(reqData.Refresh)
	if err != nil {
		return middleware.DetailResponse(c, fiber.StatusUnauthorized, "Token is invalid or expired")
	}

	var account models.Account
	if err := database.Database.Db.Where("id = ?", accountID).First(&account).Error; err != nil {
		return middleware.DetailResponse(c, fiber.StatusUnauthorized, "No active account found with the given credentials")
	}

	pair, err := middleware.GenerateTokenPair(account)
	if err != nil {
		log.Printf("Error generating access token: %v", err)
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to generate token.")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"access": pair.Access})
}

// ListAccounts returns every account. Superuser-only via route gate.
func ListAccounts(c *fiber.Ctx) error {
	var accounts []models.Account
	if err := database.Database.Db.Order("username").Find(&accounts).Error; err != nil {
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to fetch accounts.")
	}

	return c.Status(fiber.StatusOK).JSON(accounts)
}

// DeleteAccount removes an account. Courses it instructs keep existing with a
// nulled instructor reference; its enrollments are removed with it.
func DeleteAccount(c *fiber.Ctx) error {
	accountID, err := uuid.Parse(strings.TrimSpace(c.Params("account_id")))
	if err != nil {
		return middleware.DetailResponse(c, fiber.StatusNotFound, "Not found.")
	}

	var account models.Account
	if err := database.Database.Db.Where("id = ?", accountID).First(&account).Error; err != nil {
		return middleware.DetailResponse(c, fiber.StatusNotFound, "Not found.")
	}

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Course{}).
			Where("instructor_id = ?", account.ID).
			Update("instructor_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", account.ID).
			Delete(&models.StudentCourse{}).Error; err != nil {
			return err
		}
		return tx.Delete(&account).Error
	})
	if err != nil {
		log.Printf("Error deleting account %s: %v", account.ID, err)
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to delete account.")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
