package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	trackerUsecases "vita/internal/application/tracker/usecases"
	"vita/internal/domain/profile"
	"vita/internal/domain/tracker"
	"vita/internal/shared/biztime"
	apperrors "vita/internal/shared/errors"
	"vita/internal/shared/goroutine"
	"vita/internal/shared/logger"
)

// SyncScheduler runs the periodic tracker synchronization. Each pass
// walks the active integrations and syncs the ones whose last run is
// older than the interval, so a restart catches up immediately instead
// of waiting a full tick.
type SyncScheduler struct {
	syncUC          *trackerUsecases.SyncWindowUseCase
	integrationRepo tracker.IntegrationRepository
	profileRepo     profile.Repository
	logger          logger.Interface
	stopChan        chan struct{}
	stopOnce        sync.Once
	wg              sync.WaitGroup
	interval        time.Duration
	windowDays      int
}

func NewSyncScheduler(
	syncUC *trackerUsecases.SyncWindowUseCase,
	integrationRepo tracker.IntegrationRepository,
	profileRepo profile.Repository,
	intervalMinutes int,
	windowDays int,
	logger logger.Interface,
) *SyncScheduler {
	if intervalMinutes <= 0 {
		intervalMinutes = 30
	}
	if windowDays <= 0 {
		windowDays = trackerUsecases.DefaultWindowDays
	}
	return &SyncScheduler{
		syncUC:          syncUC,
		integrationRepo: integrationRepo,
		profileRepo:     profileRepo,
		logger:          logger,
		stopChan:        make(chan struct{}),
		interval:        time.Duration(intervalMinutes) * time.Minute,
		windowDays:      windowDays,
	}
}

// Start starts the scheduler.
func (s *SyncScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting sync scheduler", "interval", s.interval, "window_days", s.windowDays)

	s.wg.Add(1)
	goroutine.SafeGo(s.logger, "sync-scheduler", func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	})
}

// Stop stops the scheduler gracefully.
func (s *SyncScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping sync scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("sync scheduler stopped")
	})
}

func (s *SyncScheduler) runLoop(ctx context.Context) {
	// Catch-up pass on startup: anything due gets synced right away.
	s.runPass(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("sync scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.runPass(ctx)
		}
	}
}

func (s *SyncScheduler) runPass(ctx context.Context) {
	integrations, err := s.integrationRepo.ListActive(ctx)
	if err != nil {
		s.logger.Errorw("failed to list active integrations", "error", err)
		return
	}

	now := biztime.NowUTC()
	for _, integration := range integrations {
		if !s.due(integration, now) {
			continue
		}
		s.syncOne(ctx, integration)
	}
}

// due reports whether the integration's last sync is old enough for
// another pass. Never-synced integrations are always due.
func (s *SyncScheduler) due(integration *tracker.Integration, now time.Time) bool {
	if integration.LastSyncedAt == nil {
		return true
	}
	return now.Sub(*integration.LastSyncedAt) >= s.interval
}

func (s *SyncScheduler) syncOne(ctx context.Context, integration *tracker.Integration) {
	userName := s.userName(ctx, integration.UserID)
	startTime := time.Now()

	outcome, err := s.syncUC.Execute(ctx, trackerUsecases.SyncCommand{
		UserID:   integration.UserID,
		UserName: userName,
		Days:     s.windowDays,
	})
	if err != nil {
		// A manually triggered sync may be holding the guard.
		if errors.Is(err, apperrors.ErrSyncInProgress) {
			s.logger.Debugw("sync already running, skipping", "user_id", integration.UserID)
			return
		}
		s.logger.Errorw("scheduled sync failed",
			"user_id", integration.UserID,
			"error", err,
			"duration", time.Since(startTime))
		return
	}

	s.logger.Infow("scheduled sync finished",
		"user_id", integration.UserID,
		"status", outcome.Status,
		"failed_fetches", outcome.FailedFetches,
		"duration", time.Since(startTime))
}

func (s *SyncScheduler) userName(ctx context.Context, userID uint) string {
	p, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil || p == nil {
		return ""
	}
	return p.DisplayName
}
