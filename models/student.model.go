package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment status values for a student application. Only one holds at a
// time; "completed" is terminal in the forward direction.
const (
	PaymentPending           = "pending"
	PaymentUnderVerification = "under_verification"
	PaymentCompleted         = "completed"
	PaymentFailed            = "failed"
	PaymentRefunded          = "refunded"
)

var Branches = []string{"CSE", "IT", "ECE", "EEE", "ME", "CE", "Other"}
var Years = []string{"1st Year", "2nd Year", "3rd Year", "4th Year"}

// Student is one student's end-to-end application against one track:
// registration, test outcome, payment proof and issued certificate all
// live on this row.
type Student struct {
	gorm.Model
	UserID *uint `json:"user_id" gorm:"index"` // nullable, anonymous applications allowed

	FullName       string `json:"full_name" gorm:"not null"`
	Email          string `json:"email" gorm:"not null"`
	Mobile         string `json:"mobile" gorm:"not null"`
	CollegeName    string `json:"college_name" gorm:"not null"`
	Branch         string `json:"branch" gorm:"not null"`
	Year           string `json:"year" gorm:"not null"`
	CompletionDate string `json:"completion_date"`

	CertificateID    uint   `json:"certificate_id" gorm:"index;not null"`
	InternshipDomain string `json:"internship_domain"`

	TestPassed *bool `json:"test_passed"` // null until the first passing attempt

	PaymentStatus        string     `json:"payment_status" gorm:"default:'pending'"`
	TransactionID        string     `json:"transaction_id"`
	PaymentScreenshotURL string     `json:"payment_screenshot_url"`
	PaymentVerifiedAt    *time.Time `json:"payment_verified_at"`
	PaymentVerifiedBy    string     `json:"payment_verified_by"`
	RejectionReason      string     `json:"rejection_reason"`

	CertificateNumber   *string    `json:"certificate_number" gorm:"uniqueIndex"`
	CertificateIssuedAt *time.Time `json:"certificate_issued_at"`

	IsDeleted bool `gorm:"default:false"`
}
