package models

import "time"

type ComputerCourse struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100" json:"title"`
	FullName    string    `gorm:"size:255" json:"fullName"`
	Duration    string    `gorm:"size:64" json:"duration"`
	Price       string    `gorm:"size:64" json:"price"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	LearningPoints []ComputerLearningPoint `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"learningPoints"`
}

// ComputerLearningPoint is one ordered bullet of a computer course's syllabus.
// Points only exist through their owning course; sort_order is reassigned 1..N
// whenever the course's point list is replaced.
type ComputerLearningPoint struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CourseID  uint   `gorm:"index;not null" json:"courseId"`
	Point     string `gorm:"type:text" json:"point"`
	SortOrder int    `json:"sortOrder"`
}
