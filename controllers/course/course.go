package courseController

import (
	"fmt"
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func preloadCourse(db *gorm.DB) *gorm.DB {
	return db.Preload("Contents").Preload("StudentsCourses.Student")
}

// GetAllCourses lists every course for superusers and only the courses the
// actor is enrolled in (any status) for everyone else.
func GetAllCourses(c *fiber.Ctx) error {
	actor, ok := c.Locals("account").(models.Account)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusUnauthorized, "Given token is not valid for any token type")
	}

	db := database.Database.Db
	var courses []models.Course

	if actor.IsSuperuser {
		if err := preloadCourse(db).Order("name").Find(&courses).Error; err != nil {
			return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses.")
		}
	} else {
		err := preloadCourse(db).
			Joins("JOIN student_courses ON student_courses.course_id = courses.id").
			Where("student_courses.student_id = ?", actor.ID).
			Order("name").
			Find(&courses).Error
		if err != nil {
			return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses.")
		}
	}

	views := make([]courseView, 0, len(courses))
	for _, course := range courses {
		views = append(views, newCourseView(course))
	}

	return c.Status(fiber.StatusOK).JSON(views)
}

// CreateCourse creates a course. Collection gate already enforced superuser.
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCoursePayload)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data.")
	}

	db := database.Database.Db

	if err := db.Where("name = ?", reqData.Name).First(&models.Course{}).Error; err == nil {
		return middleware.ValidationErrorResponse(c, map[string][]string{
			"name": {"course with this name already exists."},
		})
	}

	if reqData.InstructorID != nil {
		if err := db.Where("id = ?", *reqData.InstructorID).First(&models.Account{}).Error; err != nil {
			return middleware.ValidationErrorResponse(c, map[string][]string{
				"instructor": {fmt.Sprintf("Invalid pk %q - object does not exist.", reqData.InstructorID.String())},
			})
		}
	}

	course := models.Course{
		Name:         reqData.Name,
		Status:       reqData.Status,
		StartDate:    reqData.StartDate,
		EndDate:      reqData.EndDate,
		InstructorID: reqData.InstructorID,
	}

	if err := db.Create(&course).Error; err != nil {
		log.Printf("Error saving course to database: %v", err)
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to create course.")
	}

	return c.Status(fiber.StatusCreated).JSON(newCourseView(course))
}

// GetCourseDetail fetches one course by id. Resolution is existence-only;
// the collection gate is the sole permission check on this endpoint.
func GetCourseDetail(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)

	var course models.Course
	if err := preloadCourse(database.Database.Db).Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.DetailResponse(c, fiber.StatusNotFound, "Not found.")
	}

	return c.Status(fiber.StatusOK).JSON(newCourseView(course))
}

// UpdateCourse applies a partial update. Superuser-only via collection gate.
func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCoursePayload)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data.")
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.DetailResponse(c, fiber.StatusNotFound, "Not found.")
	}

	if reqData.Name != "" && reqData.Name != course.Name {
		if err := db.Where("name = ? AND id <> ?", reqData.Name, course.ID).First(&models.Course{}).Error; err == nil {
			return middleware.ValidationErrorResponse(c, map[string][]string{
				"name": {"course with this name already exists."},
			})
		}
		course.Name = reqData.Name
	}
	if reqData.Status != "" {
		course.Status = reqData.Status
	}
	if reqData.StartDate != nil {
		course.StartDate = *reqData.StartDate
	}
	if reqData.EndDate != nil {
		course.EndDate = *reqData.EndDate
	}
	if reqData.SetInstructor {
		if reqData.InstructorID != nil {
			if err := db.Where("id = ?", *reqData.InstructorID).First(&models.Account{}).Error; err != nil {
				return middleware.ValidationErrorResponse(c, map[string][]string{
					"instructor": {fmt.Sprintf("Invalid pk %q - object does not exist.", reqData.InstructorID.String())},
				})
			}
		}
		course.InstructorID = reqData.InstructorID
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(&course).Error
	})
	if err != nil {
		log.Printf("Error updating course %s: %v", course.ID, err)
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to update course.")
	}

	if err := preloadCourse(db).Where("id = ?", course.ID).First(&course).Error; err != nil {
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to fetch course.")
	}

	return c.Status(fiber.StatusOK).JSON(newCourseView(course))
}

// DeleteCourse removes a course and, in the same transaction, every content
// and enrollment that belongs to it.
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.DetailResponse(c, fiber.StatusNotFound, "Not found.")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Content{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.StudentCourse{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		log.Printf("Error deleting course %s: %v", course.ID, err)
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to delete course.")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
