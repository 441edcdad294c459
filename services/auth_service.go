package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"institute-backend/models"
)

// SessionTTL bounds how long a login stays valid; sessions are not renewed on
// activity.
const SessionTTL = 24 * time.Hour

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

func generateTokenHex(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Authenticate verifies a username/password pair. Unknown usernames and wrong
// passwords both come back as ErrInvalidCredentials.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// burn a compare anyway so the miss costs the same as a mismatch
			_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"), []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// CreateSession stores a new server-side session and returns it; the caller
// hands the token to the browser as a cookie.
func (s *AuthService) CreateSession(userID uint) (*models.Session, error) {
	token, err := generateTokenHex(32)
	if err != nil {
		return nil, err
	}
	session := models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(SessionTTL),
	}
	if err := s.DB.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// UserByToken resolves a session token to its user. Expired sessions are
// removed on sight and reported the same as missing ones.
func (s *AuthService) UserByToken(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrInvalidCredentials
	}
	var session models.Session
	if err := s.DB.Where("token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if time.Now().After(session.ExpiresAt) {
		s.DB.Delete(&models.Session{}, "token = ?", token)
		return nil, ErrInvalidCredentials
	}
	var user models.User
	if err := s.DB.First(&user, session.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return &user, nil
}

// DeleteSession invalidates a session server-side. Deleting an unknown token
// is not an error.
func (s *AuthService) DeleteSession(token string) error {
	if token == "" {
		return nil
	}
	return s.DB.Delete(&models.Session{}, "token = ?", token).Error
}

// EnsureAdmin seeds the single admin account if the username is absent. Safe
// to run on every boot; the unique index on username backstops races.
func (s *AuthService) EnsureAdmin(username, password string) error {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{Username: username, Password: string(hash)}
	if err := s.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	log.Printf("Default admin user %q created", username)
	return nil
}
