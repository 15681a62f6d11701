package models

import "gorm.io/gorm"

// Setting keys in use
const (
	SettingUpiID = "upi_id"
)

// PlatformSetting is a generic key-value row for platform configuration
// that admins can change at runtime (currently the UPI payment address).
type PlatformSetting struct {
	gorm.Model
	SettingKey   string `json:"setting_key" gorm:"unique;not null"`
	SettingValue string `json:"setting_value"`
}
