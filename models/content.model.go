package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Content belongs to exactly one course and is removed with it.
type Content struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name     string    `json:"name" gorm:"size:150;not null"`
	Content  string    `json:"content" gorm:"type:text;not null"`
	VideoURL *string   `json:"video_url" gorm:"size:200"`
	CourseID uuid.UUID `json:"course_id" gorm:"type:uuid;index;not null"`
}

func (c *Content) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
