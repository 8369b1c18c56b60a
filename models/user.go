package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the operator account that guards the time sheet.
type User struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
	Username           string         `gorm:"uniqueIndex;not null;size:100" json:"username"`
	FullName           string         `gorm:"size:200" json:"full_name"`
	PasswordHash       string         `gorm:"not null" json:"-"`
	MustChangePassword bool           `gorm:"not null;default:false" json:"must_change_password"`
}

func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}
