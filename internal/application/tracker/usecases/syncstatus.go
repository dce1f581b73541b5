package usecases

import (
	"context"
	"fmt"
	"time"

	"vita/internal/domain/tracker"
	"vita/internal/shared/biztime"
)

type SyncStatusResult struct {
	Connected     bool       `json:"connected"`
	Provider      string     `json:"provider,omitempty"`
	LastSyncedAt  *time.Time `json:"last_synced_at,omitempty"`
	Stale         bool       `json:"stale"`
	FailureStreak int        `json:"failure_streak"`
}

// SyncStatusUseCase reports whether a user has an active integration and
// how fresh its data is. Stale means the last sync is older than the
// configured sync interval, or that no sync has happened yet.
type SyncStatusUseCase struct {
	integrationRepo tracker.IntegrationRepository
	interval        time.Duration
}

func NewSyncStatusUseCase(integrationRepo tracker.IntegrationRepository, intervalMinutes int) *SyncStatusUseCase {
	if intervalMinutes <= 0 {
		intervalMinutes = 30
	}
	return &SyncStatusUseCase{
		integrationRepo: integrationRepo,
		interval:        time.Duration(intervalMinutes) * time.Minute,
	}
}

func (uc *SyncStatusUseCase) Execute(ctx context.Context, userID uint) (*SyncStatusResult, error) {
	integration, err := uc.integrationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load integration: %w", err)
	}
	if integration == nil || !integration.Active {
		return &SyncStatusResult{Connected: false, Stale: true}, nil
	}

	result := &SyncStatusResult{
		Connected:     true,
		Provider:      integration.Provider,
		LastSyncedAt:  integration.LastSyncedAt,
		FailureStreak: integration.FailureStreak,
		Stale:         true,
	}
	if integration.LastSyncedAt != nil {
		result.Stale = biztime.NowUTC().Sub(*integration.LastSyncedAt) > uc.interval
	}
	return result, nil
}
