package courseController

import (
	"errors"
	"fmt"
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourseStudents returns the course with its enrollment list.
// Superuser-only via route gate.
func GetCourseStudents(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)

	var course models.Course
	err := database.Database.Db.
		Preload("StudentsCourses.Student").
		Where("id = ?", courseID).
		First(&course).Error
	if err != nil {
		return middleware.DetailResponse(c, fiber.StatusNotFound, "Not found.")
	}

	return c.Status(fiber.StatusOK).JSON(newCourseStudentsView(course))
}

// AddStudentsToCourse enrolls students by email with all-or-nothing
// semantics: every email is resolved before any row is written, and the
// first unresolved email aborts the whole call. Re-adding an already
// enrolled student reuses the existing row untouched.
func AddStudentsToCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.DetailResponse(c, fiber.StatusNotFound, "Not found.")
	}

	reqData, ok := c.Locals("validatedStudents").(*courseValidator.AddStudentsPayload)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data.")
	}

	// Resolution pass, in input order, before any mutation
	students := make([]models.Account, 0, len(reqData.Emails))
	for _, email := range reqData.Emails {
		var account models.Account
		if err := db.Where("email = ?", email).First(&account).Error; err != nil {
			return middleware.DetailResponse(c, fiber.StatusBadRequest,
				fmt.Sprintf("No active accounts was found: %s.", email))
		}
		students = append(students, account)
	}

	var added []models.Account
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, student := range students {
			var existing models.StudentCourse
			err := tx.Where("student_id = ? AND course_id = ?", student.ID, course.ID).
				First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			enrollment := models.StudentCourse{
				Status:    models.EnrollmentPending,
				StudentID: student.ID,
				CourseID:  course.ID,
			}
			if err := tx.Create(&enrollment).Error; err != nil {
				return err
			}
			added = append(added, student)
		}
		return nil
	})
	if err != nil {
		log.Printf("Error enrolling students in course %s: %v", course.ID, err)
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to enroll students.")
	}

	for _, student := range added {
		go utils.SendEnrollmentEmail(student, course)
	}

	if err := db.Preload("StudentsCourses.Student").Where("id = ?", course.ID).First(&course).Error; err != nil {
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to fetch course.")
	}

	return c.Status(fiber.StatusOK).JSON(newCourseStudentsView(course))
}
