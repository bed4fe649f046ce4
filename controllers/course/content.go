package courseController

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/permissions"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateContent creates a content under the course named in the path.
// The owning course comes from the route, never from the body.
func CreateContent(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.DetailResponse(c, fiber.StatusNotFound, "course not found.")
	}

	reqData, ok := c.Locals("validatedContent").(*courseValidator.CreateContentPayload)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data.")
	}

	content := models.Content{
		Name:     reqData.Name,
		Content:  reqData.Content,
		VideoURL: reqData.VideoURL,
		CourseID: course.ID,
	}

	if err := db.Create(&content).Error; err != nil {
		log.Printf("Error saving content to database: %v", err)
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to create content.")
	}

	return c.Status(fiber.StatusCreated).JSON(content)
}

// resolveContent runs the two-step lookup and the object-level permission
// check shared by the content detail handlers: course first, then content,
// then superuser-or-enrolled-reader. When it returns ok=false the error
// response has already been written.
func resolveContent(c *fiber.Ctx) (models.Content, bool) {
	courseID := c.Locals("courseID").(uuid.UUID)
	contentID := c.Locals("contentID").(uuid.UUID)

	db := database.Database.Db

	if err := db.Where("id = ?", courseID).First(&models.Course{}).Error; err != nil {
		_ = middleware.DetailResponse(c, fiber.StatusNotFound, "course not found.")
		return models.Content{}, false
	}

	var content models.Content
	if err := db.Where("id = ?", contentID).First(&content).Error; err != nil {
		_ = middleware.DetailResponse(c, fiber.StatusNotFound, "content not found.")
		return models.Content{}, false
	}

	actor, err := middleware.LoadActor(c)
	if err != nil {
		_ = middleware.DetailResponse(c, fiber.StatusUnauthorized, "Given token is not valid for any token type")
		return models.Content{}, false
	}

	var enrolled int64
	db.Model(&models.StudentCourse{}).
		Where("student_id = ? AND course_id = ?", actor.ID, content.CourseID).
		Count(&enrolled)

	if !permissions.ContentAccess(actor, c.Method(), enrolled > 0) {
		_ = middleware.DetailResponse(c, fiber.StatusForbidden, "You do not have permission to perform this action.")
		return models.Content{}, false
	}

	return content, true
}

// GetContentDetail fetches one content.
func GetContentDetail(c *fiber.Ctx) error {
	content, ok := resolveContent(c)
	if !ok {
		return nil
	}

	return c.Status(fiber.StatusOK).JSON(content)
}

// UpdateContent applies a partial update to a content.
func UpdateContent(c *fiber.Ctx) error {
	content, ok := resolveContent(c)
	if !ok {
		return nil
	}

	reqData, ok := c.Locals("validatedContentUpdate").(*courseValidator.UpdateContentPayload)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data.")
	}

	if reqData.Name != "" {
		content.Name = reqData.Name
	}
	if reqData.Content != "" {
		content.Content = reqData.Content
	}
	if reqData.SetVideoURL {
		content.VideoURL = reqData.VideoURL
	}

	if err := database.Database.Db.Save(&content).Error; err != nil {
		log.Printf("Error updating content %s: %v", content.ID, err)
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to update content.")
	}

	return c.Status(fiber.StatusOK).JSON(content)
}

// DeleteContent removes a content permanently.
func DeleteContent(c *fiber.Ctx) error {
	content, ok := resolveContent(c)
	if !ok {
		return nil
	}

	if err := database.Database.Db.Delete(&content).Error; err != nil {
		log.Printf("Error deleting content %s: %v", content.ID, err)
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to delete content.")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
