package tracker

import (
	"fmt"
	"time"
)

// Integration links a local profile to a fitness tracker account and
// holds the OAuth credentials used to read data on its behalf.
type Integration struct {
	ID             uint
	UserID         uint
	Provider       string
	ProviderUserID string
	AccessToken    string
	RefreshToken   string
	TokenExpiresAt time.Time
	LastSyncedAt   *time.Time
	FailureStreak  int
	NotifiedAt     *time.Time
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewIntegration(userID uint, provider, providerUserID string) (*Integration, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if provider == "" {
		return nil, fmt.Errorf("provider is required")
	}
	if providerUserID == "" {
		return nil, fmt.Errorf("provider user ID is required")
	}

	now := time.Now()
	return &Integration{
		UserID:         userID,
		Provider:       provider,
		ProviderUserID: providerUserID,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// ApplyTokens replaces the stored credentials. An empty refresh token
// keeps the previous one, since providers may omit it on refresh.
func (i *Integration) ApplyTokens(accessToken, refreshToken string, expiresAt time.Time) {
	i.AccessToken = accessToken
	if refreshToken != "" {
		i.RefreshToken = refreshToken
	}
	i.TokenExpiresAt = expiresAt
	i.UpdatedAt = time.Now()
}

// MarkSynced stamps the integration after a sync run. The stamp is
// written regardless of outcome so the scheduler does not retry a
// broken integration in a tight loop.
func (i *Integration) MarkSynced(at time.Time, failed bool) {
	i.LastSyncedAt = &at
	if failed {
		i.FailureStreak++
	} else {
		i.FailureStreak = 0
		i.NotifiedAt = nil
	}
	i.UpdatedAt = time.Now()
}

// MarkNotified records that a reconnect notification went out for the
// current failure streak.
func (i *Integration) MarkNotified(at time.Time) {
	i.NotifiedAt = &at
	i.UpdatedAt = time.Now()
}

func (i *Integration) Deactivate() {
	i.Active = false
	i.AccessToken = ""
	i.RefreshToken = ""
	i.UpdatedAt = time.Now()
}

// TokenValid reports whether the access token is still usable at t.
func (i *Integration) TokenValid(t time.Time) bool {
	return i.AccessToken != "" && t.Before(i.TokenExpiresAt)
}
