package models

import "gorm.io/gorm"

// CertificateTrack is a catalog entry for an internship domain a student
// can apply to (e.g. "Web Development"). Immutable from the student side.
type CertificateTrack struct {
	gorm.Model
	CourseName  string `json:"course_name" gorm:"not null"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Price       int    `json:"price" gorm:"default:0"` // rupees
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}
