package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course status values
const (
	CourseNotStarted = "not started"
	CourseInProgress = "in progress"
	CourseFinished   = "finished"
)

// IsValidCourseStatus reports whether s is one of the allowed status choices.
func IsValidCourseStatus(s string) bool {
	return s == CourseNotStarted || s == CourseInProgress || s == CourseFinished
}

type Course struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string         `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Status       string         `json:"status" gorm:"size:11;default:'not started'"`
	StartDate    datatypes.Date `json:"start_date" gorm:"not null"`
	EndDate      datatypes.Date `json:"end_date" gorm:"not null"`
	InstructorID *uuid.UUID     `json:"instructor" gorm:"type:uuid"`
	Instructor   *Account       `json:"-" gorm:"foreignKey:InstructorID;constraint:OnDelete:SET NULL"`

	Contents        []Content       `json:"contents" gorm:"constraint:OnDelete:CASCADE"`
	StudentsCourses []StudentCourse `json:"students_courses" gorm:"constraint:OnDelete:CASCADE"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = CourseNotStarted
	}
	return nil
}
