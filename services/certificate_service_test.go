package services

import (
	"errors"
	"testing"
	"time"

	"institute-backend/models"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return d
}

func TestCertificateCreateDuplicateNumber(t *testing.T) {
	svc := NewCertificateService(openTestDB(t))

	first := models.Certificate{
		CertificateNumber: "ADCA-2023-1234",
		Name:              "Rahul Kumar",
		IssueDate:         date(t, "2023-04-15"),
		PercentageScore:   85,
	}
	if err := svc.Create(&first); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := models.Certificate{
		CertificateNumber: "ADCA-2023-1234",
		Name:              "Someone Else",
		IssueDate:         date(t, "2023-05-01"),
	}
	if err := svc.Create(&dup); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// the original record must be untouched
	got, err := svc.GetByNumber("ADCA-2023-1234")
	if err != nil {
		t.Fatalf("lookup after conflict: %v", err)
	}
	if got.Name != "Rahul Kumar" || got.ID != first.ID {
		t.Fatalf("first record changed: %+v", got)
	}
}

func TestCertificateLookupUnknownNumber(t *testing.T) {
	svc := NewCertificateService(openTestDB(t))
	if _, err := svc.GetByNumber("UNKNOWN-000"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCertificateListNewestIssueDateFirst(t *testing.T) {
	svc := NewCertificateService(openTestDB(t))

	for _, c := range []models.Certificate{
		{CertificateNumber: "A-1", IssueDate: date(t, "2023-05-20")},
		{CertificateNumber: "A-2", IssueDate: date(t, "2023-08-15")},
		{CertificateNumber: "A-3", IssueDate: date(t, "2023-04-15")},
	} {
		cert := c
		if err := svc.Create(&cert); err != nil {
			t.Fatalf("create %s: %v", c.CertificateNumber, err)
		}
	}

	certs, err := svc.GetAll()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"A-2", "A-1", "A-3"}
	if len(certs) != len(want) {
		t.Fatalf("expected %d certificates, got %d", len(want), len(certs))
	}
	for i, number := range want {
		if certs[i].CertificateNumber != number {
			t.Fatalf("position %d: expected %s, got %s", i, number, certs[i].CertificateNumber)
		}
	}
}

func TestCertificatePartialUpdate(t *testing.T) {
	svc := NewCertificateService(openTestDB(t))

	cert := models.Certificate{
		CertificateNumber: "DCA-2023-5678",
		Name:              "Priya Sharma",
		PercentageScore:   78,
		IssueDate:         date(t, "2023-05-20"),
	}
	if err := svc.Create(&cert); err != nil {
		t.Fatalf("create: %v", err)
	}

	score := 80
	updated, err := svc.Update(cert.ID, CertificatePatch{PercentageScore: &score})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PercentageScore != 80 {
		t.Fatalf("expected score 80, got %d", updated.PercentageScore)
	}
	if updated.Name != "Priya Sharma" || updated.CertificateNumber != "DCA-2023-5678" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	if _, err := svc.Update(9999, CertificatePatch{PercentageScore: &score}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestCertificateDelete(t *testing.T) {
	svc := NewCertificateService(openTestDB(t))

	cert := models.Certificate{CertificateNumber: "TALLY-2023-9012", IssueDate: date(t, "2023-06-10")}
	if err := svc.Create(&cert); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(cert.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByNumber("TALLY-2023-9012"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(cert.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
