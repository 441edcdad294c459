package models

import "time"

const (
	MessageStatusOpen   = "open"
	MessageStatusClosed = "closed"
)

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Phone     string    `gorm:"size:32" json:"phone"`
	Email     string    `gorm:"size:255" json:"email"`
	Course    string    `gorm:"size:255" json:"course"`
	Message   string    `gorm:"type:text" json:"message"`
	Status    string    `gorm:"size:16;default:open" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
