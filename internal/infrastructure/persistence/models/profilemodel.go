package models

import "time"

// ProfileModel represents the database persistence model for local profiles.
type ProfileModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;size:64;uniqueIndex:idx_profile_name"`
	DisplayName string `gorm:"not null;size:128"`
	Timezone    string `gorm:"size:64;default:UTC"`
	Expecting   bool   `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ProfileModel) TableName() string {
	return "profiles"
}
