package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account known to the chat service. Presence is a plain flag on
// the row; the hub flips it off when the user disconnects.
type User struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	IsOnline bool   `gorm:"column:is_online" json:"is_online"`
}

// BeforeCreate is a GORM hook that assigns a UUID when the ID is unset.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
