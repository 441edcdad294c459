package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"institute-backend/models"
)

type CertificateService struct {
	DB *gorm.DB
}

func NewCertificateService(db *gorm.DB) *CertificateService {
	return &CertificateService{DB: db}
}

// GetByNumber is the public verification lookup: exact match only.
func (s *CertificateService) GetByNumber(number string) (*models.Certificate, error) {
	var cert models.Certificate
	if err := s.DB.Where("certificate_number = ?", number).First(&cert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cert, nil
}

func (s *CertificateService) GetAll() ([]models.Certificate, error) {
	var certs []models.Certificate
	err := s.DB.Order("issue_date DESC, id DESC").Find(&certs).Error
	return certs, err
}

func (s *CertificateService) Create(cert *models.Certificate) error {
	if err := s.DB.Create(cert).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// CertificatePatch carries the optional fields of a partial update; nil means
// "leave unchanged".
type CertificatePatch struct {
	CertificateNumber *string
	Name              *string
	Address           *string
	AadharNumber      *string
	CertificateName   *string
	IssueDate         *time.Time
	PercentageScore   *int
}

func (p CertificatePatch) columns() map[string]any {
	updates := map[string]any{}
	if p.CertificateNumber != nil {
		updates["certificate_number"] = *p.CertificateNumber
	}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Address != nil {
		updates["address"] = *p.Address
	}
	if p.AadharNumber != nil {
		updates["aadhar_number"] = *p.AadharNumber
	}
	if p.CertificateName != nil {
		updates["certificate_name"] = *p.CertificateName
	}
	if p.IssueDate != nil {
		updates["issue_date"] = *p.IssueDate
	}
	if p.PercentageScore != nil {
		updates["percentage_score"] = *p.PercentageScore
	}
	return updates
}

func (s *CertificateService) Update(id uint, patch CertificatePatch) (*models.Certificate, error) {
	var cert models.Certificate
	if err := s.DB.First(&cert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if updates := patch.columns(); len(updates) > 0 {
		if err := s.DB.Model(&cert).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrConflict
			}
			return nil, err
		}
	}
	return &cert, nil
}

func (s *CertificateService) Delete(id uint) error {
	res := s.DB.Delete(&models.Certificate{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
