package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is a platform user. Superusers act as admins and instructors,
// everyone else is a student.
type Account struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username    string    `json:"username" gorm:"size:150;uniqueIndex;not null"`
	Email       string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	Password    string    `json:"-" gorm:"size:128;not null"` // bcrypt hash, never serialized
	IsSuperuser bool      `json:"is_superuser" gorm:"default:false"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
