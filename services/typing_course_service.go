package services

import (
	"errors"

	"gorm.io/gorm"

	"institute-backend/models"
)

type TypingCourseService struct {
	DB *gorm.DB
}

func NewTypingCourseService(db *gorm.DB) *TypingCourseService {
	return &TypingCourseService{DB: db}
}

func (s *TypingCourseService) GetAll() ([]models.TypingCourse, error) {
	var courses []models.TypingCourse
	err := s.DB.Preload("LearningPoints", orderedPoints).Order("id ASC").Find(&courses).Error
	return courses, err
}

func (s *TypingCourseService) GetByID(id uint) (*models.TypingCourse, error) {
	var course models.TypingCourse
	if err := s.DB.Preload("LearningPoints", orderedPoints).First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (s *TypingCourseService) Create(course *models.TypingCourse, points []string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(course).Error; err != nil {
			return err
		}
		return insertTypingPoints(tx, course.ID, points)
	})
}

func (s *TypingCourseService) Update(id uint, patch CoursePatch, points *[]string) (*models.TypingCourse, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var course models.TypingCourse
		if err := tx.First(&course, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if updates := patch.columns(false); len(updates) > 0 {
			if err := tx.Model(&course).Updates(updates).Error; err != nil {
				return err
			}
		}
		if points != nil {
			if err := tx.Where("course_id = ?", id).Delete(&models.TypingLearningPoint{}).Error; err != nil {
				return err
			}
			if err := insertTypingPoints(tx, id, *points); err != nil {
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

func (s *TypingCourseService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&models.TypingLearningPoint{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.TypingCourse{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func insertTypingPoints(tx *gorm.DB, courseID uint, points []string) error {
	if len(points) == 0 {
		return nil
	}
	rows := make([]models.TypingLearningPoint, 0, len(points))
	for i, p := range points {
		rows = append(rows, models.TypingLearningPoint{
			CourseID:  courseID,
			Point:     p,
			SortOrder: i + 1,
		})
	}
	return tx.Create(&rows).Error
}
