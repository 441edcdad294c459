package models

import "time"

// TypingCourse mirrors ComputerCourse minus the full name; the two catalogs
// are managed and rendered separately on the site.
type TypingCourse struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100" json:"title"`
	Duration    string    `gorm:"size:64" json:"duration"`
	Price       string    `gorm:"size:64" json:"price"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	LearningPoints []TypingLearningPoint `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"learningPoints"`
}

type TypingLearningPoint struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CourseID  uint   `gorm:"index;not null" json:"courseId"`
	Point     string `gorm:"type:text" json:"point"`
	SortOrder int    `json:"sortOrder"`
}
