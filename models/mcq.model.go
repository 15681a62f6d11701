package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MCQQuestion belongs to the question bank of one certificate track
type MCQQuestion struct {
	gorm.Model
	CertificateID uint   `json:"certificate_id" gorm:"index;not null"`
	Question      string `json:"question" gorm:"type:text;not null"`
	OptionA       string `json:"option_a" gorm:"not null"`
	OptionB       string `json:"option_b" gorm:"not null"`
	OptionC       string `json:"option_c" gorm:"not null"`
	OptionD       string `json:"option_d" gorm:"not null"`
	CorrectOption string `json:"correct_option" gorm:"not null"` // A, B, C or D
	IsDeleted     bool   `gorm:"default:false"`
}

// TestAttempt is an append-only audit record of one quiz submission.
// Answers maps question id to the chosen option letter.
type TestAttempt struct {
	gorm.Model
	StudentID      uint              `json:"student_id" gorm:"index;not null"`
	Score          int               `json:"score"`
	TotalQuestions int               `json:"total_questions"`
	Passed         bool              `json:"passed" gorm:"default:false"`
	Answers        datatypes.JSONMap `json:"answers"`
}
