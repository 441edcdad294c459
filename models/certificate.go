package models

import "time"

type Certificate struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	CertificateNumber string    `gorm:"uniqueIndex;size:64;not null" json:"certificateNumber"`
	Name              string    `gorm:"size:255" json:"name"`
	Address           string    `gorm:"size:255" json:"address"`
	AadharNumber      string    `gorm:"size:32" json:"aadharNumber"`
	CertificateName   string    `gorm:"size:255" json:"certificateName"`
	IssueDate         time.Time `gorm:"type:date" json:"issueDate"`
	PercentageScore   int       `json:"percentageScore"`
}
