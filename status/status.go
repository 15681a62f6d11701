// Package status owns every legal transition of a student application:
// registration -> test -> payment -> admin review -> certificate.
// No handler writes payment_status or test_passed except through these
// functions. Each transition is a single conditional UPDATE guarded by
// the expected current state, so two racing requests cannot both win.
package status

import (
	"fmt"
	"strings"
	"time"

	"certify/models"
	"certify/utils"

	"gorm.io/gorm"
)

// RecordTestResult appends the attempt to the audit log and, on a pass,
// flips the application's test_passed flag. Failed attempts leave the
// application untouched; retries are unlimited.
func RecordTestResult(db *gorm.DB, studentID uint, attempt *models.TestAttempt) error {
	attempt.StudentID = studentID

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attempt).Error; err != nil {
			return fmt.Errorf("%w: saving test attempt: %v", ErrStorage, err)
		}

		if attempt.Passed {
			res := tx.Model(&models.Student{}).
				Where("id = ? AND is_deleted = ?", studentID, false).
				Update("test_passed", true)
			if res.Error != nil {
				return fmt.Errorf("%w: updating test result: %v", ErrStorage, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: student %d", ErrNotFound, studentID)
			}
		}
		return nil
	})
}

// SubmitPaymentProof moves the application to under_verification. The
// caller uploads the screenshot first; this runs only after the upload
// succeeded, so a failed upload leaves the row unchanged.
func SubmitPaymentProof(db *gorm.DB, studentID uint, transactionID, screenshotURL string) error {
	if strings.TrimSpace(transactionID) == "" {
		return fmt.Errorf("%w: transaction id is required", ErrValidation)
	}
	if screenshotURL == "" {
		return fmt.Errorf("%w: payment screenshot is required", ErrValidation)
	}

	res := db.Model(&models.Student{}).
		Where("id = ? AND is_deleted = ? AND test_passed = ? AND payment_status <> ?",
			studentID, false, true, models.PaymentCompleted).
		Updates(map[string]interface{}{
			"transaction_id":         strings.TrimSpace(transactionID),
			"payment_screenshot_url": screenshotURL,
			"payment_status":         models.PaymentUnderVerification,
			"rejection_reason":       "",
		})
	if res.Error != nil {
		return fmt.Errorf("%w: submitting payment proof: %v", ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return classifyMiss(db, studentID, "payment cannot be submitted in the current state")
	}
	return nil
}

// ApprovePayment completes the payment and issues the certificate in the
// same transaction, so a certificate number exists if and only if the
// application is completed. Requires under_verification; a stale or
// repeated approval is rejected instead of double-issuing.
func ApprovePayment(db *gorm.DB, studentID uint, verifiedBy string) (*models.Student, error) {
	now := time.Now()
	certNumber := utils.GenerateCertificateNumber(now)

	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Student{}).
			Where("id = ? AND is_deleted = ? AND payment_status = ?",
				studentID, false, models.PaymentUnderVerification).
			Updates(map[string]interface{}{
				"payment_status":        models.PaymentCompleted,
				"payment_verified_at":   now,
				"payment_verified_by":   verifiedBy,
				"rejection_reason":      "",
				"certificate_number":    certNumber,
				"certificate_issued_at": now,
			})
		if res.Error != nil {
			return fmt.Errorf("%w: approving payment: %v", ErrStorage, res.Error)
		}
		if res.RowsAffected == 0 {
			return classifyMiss(tx, studentID, "payment is not under verification")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var student models.Student
	if err := db.First(&student, studentID).Error; err != nil {
		return nil, fmt.Errorf("%w: reloading student: %v", ErrStorage, err)
	}
	return &student, nil
}

// RejectPayment fails the payment with a reason. The student may fix the
// proof and resubmit, which re-enters SubmitPaymentProof.
func RejectPayment(db *gorm.DB, studentID uint, reason string) (*models.Student, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", ErrValidation)
	}

	res := db.Model(&models.Student{}).
		Where("id = ? AND is_deleted = ? AND payment_status = ?",
			studentID, false, models.PaymentUnderVerification).
		Updates(map[string]interface{}{
			"payment_status":   models.PaymentFailed,
			"rejection_reason": reason,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("%w: rejecting payment: %v", ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, classifyMiss(db, studentID, "payment is not under verification")
	}

	var student models.Student
	if err := db.First(&student, studentID).Error; err != nil {
		return nil, fmt.Errorf("%w: reloading student: %v", ErrStorage, err)
	}
	return &student, nil
}

// classifyMiss tells a missing row apart from a guard failure after a
// conditional update touched nothing.
func classifyMiss(db *gorm.DB, studentID uint, conflictMsg string) error {
	var count int64
	db.Model(&models.Student{}).Where("id = ? AND is_deleted = ?", studentID, false).Count(&count)
	if count == 0 {
		return fmt.Errorf("%w: student %d", ErrNotFound, studentID)
	}
	return fmt.Errorf("%w: %s", ErrStateConflict, conflictMsg)
}
