package courseRoutes

import (
	courseControllers "lms/controllers/course"
	"lms/middleware"
	courseValidators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes wires course, content and enrollment-management routes.
func SetupCourseRoutes(app *fiber.App) {
	courses := app.Group("/api/courses", middleware.JWTMiddleware)

	// Collection and detail. The AdminOrReadOnly gate lets any authenticated
	// actor read; writes are superuser-only.
	courses.Get("/", middleware.AdminOrReadOnly(), courseControllers.GetAllCourses)
	courses.Post("/", middleware.AdminOrReadOnly(), courseValidators.CreateCourse(), courseControllers.CreateCourse)
	courses.Get("/:course_id", middleware.AdminOrReadOnly(), courseValidators.CourseParam(), courseControllers.GetCourseDetail)
	courses.Patch("/:course_id", middleware.AdminOrReadOnly(), courseValidators.CourseParam(), courseValidators.UpdateCourse(), courseControllers.UpdateCourse)
	courses.Delete("/:course_id", middleware.AdminOrReadOnly(), courseValidators.CourseParam(), courseControllers.DeleteCourse)

	// Contents. Creation uses the collection gate; the detail handlers apply
	// the object-level rule themselves once the content is resolved.
	courses.Post("/:course_id/contents", middleware.AdminOrReadOnly(), courseValidators.ContentParams(), courseValidators.CreateContent(), courseControllers.CreateContent)
	courses.Get("/:course_id/contents/:content_id", courseValidators.ContentParams(), courseControllers.GetContentDetail)
	courses.Patch("/:course_id/contents/:content_id", courseValidators.ContentParams(), courseValidators.UpdateContent(), courseControllers.UpdateContent)
	courses.Delete("/:course_id/contents/:content_id", courseValidators.ContentParams(), courseControllers.DeleteContent)

	// Enrollment management, superuser-only including reads
	courses.Get("/:course_id/students", middleware.AdminOnly(), courseValidators.CourseParam(), courseControllers.GetCourseStudents)
	courses.Put("/:course_id/students", middleware.AdminOnly(), courseValidators.CourseParam(), courseValidators.AddStudents(), courseControllers.AddStudentsToCourse)
}
