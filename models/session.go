package models

import "time"

// Session is one server-side login session, keyed by the opaque token the
// browser echoes back in a cookie.
type Session struct {
	Token     string    `gorm:"primaryKey;size:64" json:"-"`
	UserID    uint      `gorm:"index;not null" json:"-"`
	ExpiresAt time.Time `gorm:"index" json:"-"`
	CreatedAt time.Time `json:"-"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}
