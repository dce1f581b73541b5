package usecases

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vita/internal/domain/tracker"
	"vita/internal/infrastructure/fitbit"
	"vita/internal/shared/biztime"
	apperrors "vita/internal/shared/errors"
	"vita/internal/shared/logger"
)

// DefaultWindowDays is the default sync window.
const DefaultWindowDays = 7

// TokenProvider yields a valid access token for one user's integration.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// TokenProviderFactory builds a TokenProvider bound to one user.
type TokenProviderFactory func(userID uint) TokenProvider

// DayFetcher reads the four data domains for one date.
type DayFetcher interface {
	FetchDay(ctx context.Context, accessToken string, date time.Time) *fitbit.DayResult
}

// ReconnectNotifier mails a reconnect prompt after repeated failures.
type ReconnectNotifier interface {
	SendReconnectEmail(to, userName, provider string) error
}

type SyncCommand struct {
	UserID   uint
	UserName string
	Days     int
}

// SyncWindowUseCase runs one synchronization pass over a date window.
type SyncWindowUseCase struct {
	integrationRepo  tracker.IntegrationRepository
	activityRepo     tracker.ActivityRepository
	weightRepo       tracker.WeightRepository
	foodRepo         tracker.FoodRepository
	sleepRepo        tracker.SleepRepository
	tokens           TokenProviderFactory
	gateway          DayFetcher
	notifier         ReconnectNotifier
	notifyAddress    string
	failureThreshold int
	logger           logger.Interface

	// in-memory per-user running guard
	mu      sync.Mutex
	running map[uint]bool
}

func NewSyncWindowUseCase(
	integrationRepo tracker.IntegrationRepository,
	activityRepo tracker.ActivityRepository,
	weightRepo tracker.WeightRepository,
	foodRepo tracker.FoodRepository,
	sleepRepo tracker.SleepRepository,
	tokens TokenProviderFactory,
	gateway DayFetcher,
	notifier ReconnectNotifier,
	notifyAddress string,
	failureThreshold int,
	log logger.Interface,
) *SyncWindowUseCase {
	if failureThreshold <= 0 {
		failureThreshold = 3
	}
	return &SyncWindowUseCase{
		integrationRepo:  integrationRepo,
		activityRepo:     activityRepo,
		weightRepo:       weightRepo,
		foodRepo:         foodRepo,
		sleepRepo:        sleepRepo,
		tokens:           tokens,
		gateway:          gateway,
		notifier:         notifier,
		notifyAddress:    notifyAddress,
		failureThreshold: failureThreshold,
		logger:           log,
		running:          make(map[uint]bool),
	}
}

// Execute syncs the most recent N calendar days, oldest first. Days run
// sequentially; the four domains of each day run in parallel inside the
// gateway. A second sync for a user already running returns
// ErrSyncInProgress.
func (uc *SyncWindowUseCase) Execute(ctx context.Context, cmd SyncCommand) (*tracker.SyncOutcome, error) {
	if !uc.acquire(cmd.UserID) {
		return nil, apperrors.ErrSyncInProgress
	}
	defer uc.release(cmd.UserID)

	integration, err := uc.integrationRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load integration: %w", err)
	}
	if integration == nil || !integration.Active {
		return nil, apperrors.NewNotFoundError("no active tracker integration")
	}

	days := cmd.Days
	if days <= 0 {
		days = DefaultWindowDays
	}

	outcome := &tracker.SyncOutcome{}

	// Validate or refresh the token before touching the window. If no
	// valid token can be produced the whole run is a terminal failure
	// and the UI surfaces a reconnect prompt.
	token, err := uc.tokens(cmd.UserID).Token(ctx)
	if err != nil {
		uc.logger.Errorw("token validation failed", "user_id", cmd.UserID, "error", err)
		uc.finishFailed(ctx, integration, cmd.UserName, outcome)
		return outcome, fmt.Errorf("%w: %v", apperrors.ErrTransportUnreachable, err)
	}

	for _, date := range biztime.LastNDates(days) {
		uc.syncDay(ctx, cmd.UserID, token, date, outcome)
	}

	now := biztime.NowUTC()
	outcome.Finish(now)

	integration.MarkSynced(now, false)
	if err := uc.integrationRepo.Update(ctx, integration); err != nil {
		uc.logger.Errorw("failed to stamp last sync", "user_id", cmd.UserID, "error", err)
	}

	uc.logger.Infow("sync window finished",
		"user_id", cmd.UserID,
		"status", outcome.Status,
		"activities", outcome.Activities,
		"weights", outcome.Weights,
		"foods", outcome.Foods,
		"sleep", outcome.Sleep,
		"failed_fetches", outcome.FailedFetches)

	return outcome, nil
}

// syncDay fetches and persists one date. Failures are absorbed into the
// outcome; nothing here stops the rest of the window.
func (uc *SyncWindowUseCase) syncDay(ctx context.Context, userID uint, token string, date time.Time, outcome *tracker.SyncOutcome) {
	day := uc.gateway.FetchDay(ctx, token, date)

	if day.Activity.State == fitbit.DomainOK {
		if record, err := fitbit.NormalizeActivity(userID, date, day.Activity.Payload); err != nil {
			outcome.FailedFetches++
		} else if record != nil {
			if err := uc.activityRepo.Upsert(ctx, record); err != nil {
				uc.logger.Errorw("failed to upsert activity", "user_id", userID, "date", date, "error", err)
				outcome.FailedFetches++
			} else {
				outcome.Activities++
			}
		}
	} else if day.Activity.State == fitbit.DomainFailed {
		outcome.FailedFetches++
	}

	if day.Weight.State == fitbit.DomainOK {
		if record, err := fitbit.NormalizeWeight(userID, date, day.Weight.Payload); err != nil {
			outcome.FailedFetches++
		} else if record != nil {
			if err := uc.weightRepo.Upsert(ctx, record); err != nil {
				uc.logger.Errorw("failed to upsert weight", "user_id", userID, "date", date, "error", err)
				outcome.FailedFetches++
			} else {
				outcome.Weights++
			}
		}
	} else if day.Weight.State == fitbit.DomainFailed {
		outcome.FailedFetches++
	}

	if day.Food.State == fitbit.DomainOK {
		if record, err := fitbit.NormalizeFood(userID, date, day.Food.Payload); err != nil {
			outcome.FailedFetches++
		} else if record != nil {
			if err := uc.foodRepo.Upsert(ctx, record); err != nil {
				uc.logger.Errorw("failed to upsert food", "user_id", userID, "date", date, "error", err)
				outcome.FailedFetches++
			} else {
				outcome.Foods++
			}
		}
	} else if day.Food.State == fitbit.DomainFailed {
		outcome.FailedFetches++
	}

	if day.Sleep.State == fitbit.DomainOK {
		if record, err := fitbit.NormalizeSleep(userID, date, day.Sleep.Payload); err != nil {
			outcome.FailedFetches++
		} else if record != nil {
			if err := uc.sleepRepo.Upsert(ctx, record); err != nil {
				uc.logger.Errorw("failed to upsert sleep", "user_id", userID, "date", date, "error", err)
				outcome.FailedFetches++
			} else {
				outcome.Sleep++
			}
		}
	} else if day.Sleep.State == fitbit.DomainFailed {
		outcome.FailedFetches++
	}
}

// finishFailed stamps a fully failed run. The last-sync timestamp is
// written anyway so staleness-triggered retries do not spin on a dead
// credential; after enough consecutive failures a single reconnect
// notice goes out.
func (uc *SyncWindowUseCase) finishFailed(ctx context.Context, integration *tracker.Integration, userName string, outcome *tracker.SyncOutcome) {
	now := biztime.NowUTC()
	outcome.Fail(now)

	integration.MarkSynced(now, true)

	if uc.notifier != nil &&
		integration.FailureStreak >= uc.failureThreshold &&
		integration.NotifiedAt == nil &&
		uc.notifyAddress != "" {
		if err := uc.notifier.SendReconnectEmail(uc.notifyAddress, userName, integration.Provider); err != nil {
			uc.logger.Warnw("failed to send reconnect email", "user_id", integration.UserID, "error", err)
		} else {
			integration.MarkNotified(now)
		}
	}

	if err := uc.integrationRepo.Update(ctx, integration); err != nil {
		uc.logger.Errorw("failed to stamp failed sync", "user_id", integration.UserID, "error", err)
	}
}

func (uc *SyncWindowUseCase) acquire(userID uint) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.running[userID] {
		return false
	}
	uc.running[userID] = true
	return true
}

func (uc *SyncWindowUseCase) release(userID uint) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.running, userID)
}
