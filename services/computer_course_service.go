package services

import (
	"errors"

	"gorm.io/gorm"

	"institute-backend/models"
)

type ComputerCourseService struct {
	DB *gorm.DB
}

func NewComputerCourseService(db *gorm.DB) *ComputerCourseService {
	return &ComputerCourseService{DB: db}
}

func orderedPoints(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

func (s *ComputerCourseService) GetAll() ([]models.ComputerCourse, error) {
	var courses []models.ComputerCourse
	err := s.DB.Preload("LearningPoints", orderedPoints).Order("id ASC").Find(&courses).Error
	return courses, err
}

func (s *ComputerCourseService) GetByID(id uint) (*models.ComputerCourse, error) {
	var course models.ComputerCourse
	if err := s.DB.Preload("LearningPoints", orderedPoints).First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

// Create stores a course together with its learning points; sort_order is the
// 1-based position in the submitted list.
func (s *ComputerCourseService) Create(course *models.ComputerCourse, points []string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(course).Error; err != nil {
			return err
		}
		return insertComputerPoints(tx, course.ID, points)
	})
}

// CoursePatch is the partial-update shape shared by both course kinds;
// FullName is ignored for typing courses.
type CoursePatch struct {
	Title       *string
	FullName    *string
	Duration    *string
	Price       *string
	Description *string
}

func (p CoursePatch) columns(withFullName bool) map[string]any {
	updates := map[string]any{}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if withFullName && p.FullName != nil {
		updates["full_name"] = *p.FullName
	}
	if p.Duration != nil {
		updates["duration"] = *p.Duration
	}
	if p.Price != nil {
		updates["price"] = *p.Price
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	return updates
}

// Update applies a partial field update and, when points is non-nil, replaces
// the whole learning-point list in the same transaction. A nil points slice
// leaves the existing list alone; an empty one clears it.
func (s *ComputerCourseService) Update(id uint, patch CoursePatch, points *[]string) (*models.ComputerCourse, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var course models.ComputerCourse
		if err := tx.First(&course, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if updates := patch.columns(true); len(updates) > 0 {
			if err := tx.Model(&course).Updates(updates).Error; err != nil {
				return err
			}
		}
		if points != nil {
			if err := tx.Where("course_id = ?", id).Delete(&models.ComputerLearningPoint{}).Error; err != nil {
				return err
			}
			if err := insertComputerPoints(tx, id, *points); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes a course and all of its learning points atomically.
func (s *ComputerCourseService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&models.ComputerLearningPoint{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.ComputerCourse{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func insertComputerPoints(tx *gorm.DB, courseID uint, points []string) error {
	if len(points) == 0 {
		return nil
	}
	rows := make([]models.ComputerLearningPoint, 0, len(points))
	for i, p := range points {
		rows = append(rows, models.ComputerLearningPoint{
			CourseID:  courseID,
			Point:     p,
			SortOrder: i + 1,
		})
	}
	return tx.Create(&rows).Error
}
