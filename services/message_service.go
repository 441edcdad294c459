package services

import (
	"errors"

	"gorm.io/gorm"

	"institute-backend/models"
)

type MessageService struct {
	DB *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{DB: db}
}

// Create stores a visitor-submitted contact message; new messages always
// start out open.
func (s *MessageService) Create(msg *models.ContactMessage) error {
	msg.Status = models.MessageStatusOpen
	return s.DB.Create(msg).Error
}

func (s *MessageService) GetAll() ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	err := s.DB.Order("created_at DESC, id DESC").Find(&msgs).Error
	return msgs, err
}

func (s *MessageService) UpdateStatus(id uint, status string) (*models.ContactMessage, error) {
	if status != models.MessageStatusOpen && status != models.MessageStatusClosed {
		return nil, ErrInvalidStatus
	}
	var msg models.ContactMessage
	if err := s.DB.First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.DB.Model(&msg).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *MessageService) Delete(id uint) error {
	res := s.DB.Delete(&models.ContactMessage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
