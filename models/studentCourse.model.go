package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrollment status values
const (
	EnrollmentPending  = "pending"
	EnrollmentAccepted = "accepted"
)

// StudentCourse joins a student account to a course. The composite unique
// index makes re-adding an already enrolled student a no-op.
type StudentCourse struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Status    string    `json:"status" gorm:"size:20;default:'pending'"`
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;uniqueIndex:idx_student_course;not null"`
	Student   Account   `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	CourseID  uuid.UUID `json:"course_id" gorm:"type:uuid;uniqueIndex:idx_student_course;not null"`
}

func (sc *StudentCourse) BeforeCreate(tx *gorm.DB) error {
	if sc.ID == uuid.Nil {
		sc.ID = uuid.New()
	}
	if sc.Status == "" {
		sc.Status = EnrollmentPending
	}
	return nil
}
