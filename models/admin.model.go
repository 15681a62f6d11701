package models

import (
	"time"

	"gorm.io/gorm"
)

// AdminCredential is separate from the general user table. Normally a
// single row, created once through the setup action.
type AdminCredential struct {
	gorm.Model
	Username     string `json:"username" gorm:"unique;not null"`
	PasswordHash string `json:"-" gorm:"not null"` // sha256 hex digest
}

// AdminSession is a server-side record of an issued admin bearer token.
// Privileged routes revalidate the token on every call.
type AdminSession struct {
	gorm.Model
	Token     string    `json:"-" gorm:"uniqueIndex;not null"`
	Username  string    `json:"username" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
}
