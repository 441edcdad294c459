package services

import (
	"errors"
	"testing"
	"time"

	"institute-backend/models"
)

func TestAuthenticate(t *testing.T) {
	svc := NewAuthService(openTestDB(t))
	if err := svc.EnsureAdmin("itsolutionsiwan", "s3cret"); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	user, err := svc.Authenticate("itsolutionsiwan", "s3cret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Username != "itsolutionsiwan" {
		t.Fatalf("unexpected user: %+v", user)
	}

	// wrong password and unknown user must be indistinguishable
	if _, err := svc.Authenticate("itsolutionsiwan", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate("nobody", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestEnsureAdminIdempotent(t *testing.T) {
	svc := NewAuthService(openTestDB(t))

	for i := 0; i < 3; i++ {
		if err := svc.EnsureAdmin("itsolutionsiwan", "s3cret"); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	var count int64
	if err := svc.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one admin, found %d", count)
	}

	// the original password must survive repeated seeding
	if _, err := svc.Authenticate("itsolutionsiwan", "s3cret"); err != nil {
		t.Fatalf("authenticate after reseed: %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	svc := NewAuthService(openTestDB(t))
	if err := svc.EnsureAdmin("itsolutionsiwan", "s3cret"); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	user, err := svc.Authenticate("itsolutionsiwan", "s3cret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	session, err := svc.CreateSession(user.ID)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if len(session.Token) != 64 {
		t.Fatalf("expected 64-char hex token, got %d chars", len(session.Token))
	}

	got, err := svc.UserByToken(session.Token)
	if err != nil {
		t.Fatalf("resolve session: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("resolved wrong user: %d != %d", got.ID, user.ID)
	}

	if err := svc.DeleteSession(session.Token); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, err := svc.UserByToken(session.Token); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials after logout, got %v", err)
	}
}

func TestSessionExpiry(t *testing.T) {
	svc := NewAuthService(openTestDB(t))
	if err := svc.EnsureAdmin("itsolutionsiwan", "s3cret"); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	user, _ := svc.Authenticate("itsolutionsiwan", "s3cret")

	session, err := svc.CreateSession(user.ID)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	expired := time.Now().Add(-time.Minute)
	if err := svc.DB.Model(&models.Session{}).
		Where("token = ?", session.Token).
		Update("expires_at", expired).Error; err != nil {
		t.Fatalf("backdate session: %v", err)
	}

	if _, err := svc.UserByToken(session.Token); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for expired session, got %v", err)
	}

	// the expired row is removed on sight
	var count int64
	if err := svc.DB.Model(&models.Session{}).Where("token = ?", session.Token).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expired session still stored")
	}
}

func TestUserByTokenEmpty(t *testing.T) {
	svc := NewAuthService(openTestDB(t))
	if _, err := svc.UserByToken(""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty token, got %v", err)
	}
}
