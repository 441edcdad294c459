package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:150" json:"username"`
	Password  string    `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
