package courseController

import (
	"time"

	"lms/models"

	"github.com/google/uuid"
)

// Response shapes. Courses embed their contents and enrollment rows; the
// student's credential hash never crosses the wire.

type enrollmentView struct {
	ID              uuid.UUID `json:"id"`
	Status          string    `json:"status"`
	StudentID       uuid.UUID `json:"student_id"`
	StudentUsername string    `json:"student_username"`
	StudentEmail    string    `json:"student_email"`
}

type courseView struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Status          string           `json:"status"`
	StartDate       string           `json:"start_date"`
	EndDate         string           `json:"end_date"`
	Instructor      *uuid.UUID       `json:"instructor"`
	Contents        []models.Content `json:"contents"`
	StudentsCourses []enrollmentView `json:"students_courses"`
}

// courseStudentsView is the reduced course shape returned by the
// enrollment-management endpoint.
type courseStudentsView struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	StudentsCourses []enrollmentView `json:"students_courses"`
}

const dateLayout = "2006-01-02"

func newEnrollmentViews(enrollments []models.StudentCourse) []enrollmentView {
	views := make([]enrollmentView, 0, len(enrollments))
	for _, e := range enrollments {
		views = append(views, enrollmentView{
			ID:              e.ID,
			Status:          e.Status,
			StudentID:       e.StudentID,
			StudentUsername: e.Student.Username,
			StudentEmail:    e.Student.Email,
		})
	}
	return views
}

// newCourseView expects Contents and StudentsCourses.Student preloaded.
func newCourseView(course models.Course) courseView {
	contents := course.Contents
	if contents == nil {
		contents = make([]models.Content, 0)
	}

	return courseView{
		ID:              course.ID,
		Name:            course.Name,
		Status:          course.Status,
		StartDate:       time.Time(course.StartDate).Format(dateLayout),
		EndDate:         time.Time(course.EndDate).Format(dateLayout),
		Instructor:      course.InstructorID,
		Contents:        contents,
		StudentsCourses: newEnrollmentViews(course.StudentsCourses),
	}
}

func newCourseStudentsView(course models.Course) courseStudentsView {
	return courseStudentsView{
		ID:              course.ID,
		Name:            course.Name,
		StudentsCourses: newEnrollmentViews(course.StudentsCourses),
	}
}
