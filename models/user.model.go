package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string    `gorm:"default:''"`
	Email     string    `gorm:"unique;not null"`
	Mobile    string    `gorm:"default:''"`
	Role      string    `gorm:"default:'STUDENT'"`
	Password  string    `gorm:"not null"`
	LastLogin time.Time `gorm:"default:NULL"`
	IsDeleted bool      `gorm:"default:false"`
}

// UserRole maps an account to a role. Seeded with "student" at signup;
// additional rows can be granted by hand.
type UserRole struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Role      string `json:"role" gorm:"not null"`
	IsDeleted bool   `gorm:"default:false"`
}
