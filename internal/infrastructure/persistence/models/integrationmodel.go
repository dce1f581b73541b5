package models

import "time"

// IntegrationModel represents the database persistence model for tracker integrations.
type IntegrationModel struct {
	ID             uint   `gorm:"primarykey"`
	UserID         uint   `gorm:"not null;uniqueIndex:idx_integration_user_provider"`
	Provider       string `gorm:"not null;size:32;uniqueIndex:idx_integration_user_provider"`
	ProviderUserID string `gorm:"not null;size:64;index:idx_integration_provider_user;column:provider_user_id"`
	AccessToken    string `gorm:"type:text"`
	RefreshToken   string `gorm:"type:text"`
	TokenExpiresAt time.Time
	LastSyncedAt   *time.Time
	FailureStreak  int `gorm:"default:0"`
	NotifiedAt     *time.Time
	Active         bool `gorm:"default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (IntegrationModel) TableName() string {
	return "tracker_integrations"
}
