package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vita/internal/domain/tracker"
	"vita/internal/infrastructure/fitbit"
	apperrors "vita/internal/shared/errors"
)

const (
	activityJSON = `{"summary":{"steps":8000,"caloriesOut":2400,"veryActiveMinutes":30,"fairlyActiveMinutes":20,"distances":[{"activity":"total","distance":6.2}]}}`
	weightJSON   = `{"weight":[{"weight":150.5,"bmi":24.1,"fat":28.0}]}`
	foodJSON     = `{"summary":{"calories":1900,"water":500},"foods":[{"logDate":"2025-08-30","loggedFood":{"name":"oatmeal","calories":300,"mealTypeId":1}}]}`
	sleepJSON    = `{"sleep":[{"isMainSleep":true,"startTime":"2025-08-30T23:10:00.000","endTime":"2025-08-31T07:10:00.000","timeInBed":480,"efficiency":92,"levels":{"summary":{"deep":{"minutes":90},"light":{"minutes":240},"rem":{"minutes":105},"wake":{"minutes":45}}}}]}`
)

func okDay() fitbit.DayResult {
	return fitbit.DayResult{
		Activity: fitbit.DomainResult{State: fitbit.DomainOK, Payload: []byte(activityJSON)},
		Weight:   fitbit.DomainResult{State: fitbit.DomainOK, Payload: []byte(weightJSON)},
		Food:     fitbit.DomainResult{State: fitbit.DomainOK, Payload: []byte(foodJSON)},
		Sleep:    fitbit.DomainResult{State: fitbit.DomainOK, Payload: []byte(sleepJSON)},
	}
}

type syncFixture struct {
	uc           *SyncWindowUseCase
	integrations *fakeIntegrationRepo
	activities   *fakeActivityRepo
	weights      *fakeWeightRepo
	foods        *fakeFoodRepo
	sleeps       *fakeSleepRepo
	gateway      *fakeGateway
	notifier     *fakeNotifier
	tokens       *fakeTokenProvider
}

func newSyncFixture(t *testing.T, day fitbit.DayResult) *syncFixture {
	t.Helper()

	f := &syncFixture{
		integrations: newFakeIntegrationRepo(),
		activities:   &fakeActivityRepo{},
		weights:      &fakeWeightRepo{},
		foods:        &fakeFoodRepo{},
		sleeps:       &fakeSleepRepo{},
		gateway:      &fakeGateway{result: day},
		notifier:     &fakeNotifier{},
		tokens:       &fakeTokenProvider{token: "access"},
	}

	integration, err := tracker.NewIntegration(1, "fitbit", "ABC123")
	require.NoError(t, err)
	integration.ApplyTokens("access", "refresh", time.Now().Add(time.Hour))
	f.integrations.byUser[1] = integration

	f.uc = NewSyncWindowUseCase(
		f.integrations, f.activities, f.weights, f.foods, f.sleeps,
		func(uint) TokenProvider { return f.tokens },
		f.gateway, f.notifier, "household@example.com", 3, testLogger(),
	)
	return f
}

func TestSyncWindowCompleted(t *testing.T) {
	f := newSyncFixture(t, okDay())

	outcome, err := f.uc.Execute(context.Background(), SyncCommand{UserID: 1, Days: 3})
	require.NoError(t, err)

	assert.Equal(t, tracker.SyncCompleted, outcome.Status)
	assert.Equal(t, 3, outcome.Activities)
	assert.Equal(t, 3, outcome.Weights)
	assert.Equal(t, 3, outcome.Foods)
	assert.Equal(t, 3, outcome.Sleep)
	assert.Zero(t, outcome.FailedFetches)
	assert.Equal(t, 3, f.gateway.fetched)

	integration := f.integrations.byUser[1]
	require.NotNil(t, integration.LastSyncedAt)
	assert.Zero(t, integration.FailureStreak)
}

func TestSyncWindowDefaultsWindow(t *testing.T) {
	f := newSyncFixture(t, okDay())

	_, err := f.uc.Execute(context.Background(), SyncCommand{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, DefaultWindowDays, f.gateway.fetched)
}

func TestSyncWindowOneDomainFailing(t *testing.T) {
	day := okDay()
	day.Sleep = fitbit.DomainResult{State: fitbit.DomainFailed, Err: assert.AnError}
	f := newSyncFixture(t, day)

	outcome, err := f.uc.Execute(context.Background(), SyncCommand{UserID: 1, Days: 2})
	require.NoError(t, err)

	// The broken domain never blocks the other three.
	assert.Equal(t, tracker.SyncPartiallyFailed, outcome.Status)
	assert.Equal(t, 2, outcome.Activities)
	assert.Equal(t, 2, outcome.Weights)
	assert.Equal(t, 2, outcome.Foods)
	assert.Zero(t, outcome.Sleep)
	assert.Equal(t, 2, outcome.FailedFetches)

	// Partial failure is not a failed run: the streak resets.
	assert.Zero(t, f.integrations.byUser[1].FailureStreak)
}

func TestSyncWindowEmptyDomainsSkipped(t *testing.T) {
	day := okDay()
	day.Weight = fitbit.DomainResult{State: fitbit.DomainEmpty}
	f := newSyncFixture(t, day)

	outcome, err := f.uc.Execute(context.Background(), SyncCommand{UserID: 1, Days: 1})
	require.NoError(t, err)

	assert.Equal(t, tracker.SyncCompleted, outcome.Status)
	assert.Zero(t, outcome.Weights)
	assert.Zero(t, outcome.FailedFetches)
	assert.Empty(t, f.weights.records)
}

func TestSyncWindowTokenFailure(t *testing.T) {
	f := newSyncFixture(t, okDay())
	f.tokens.err = assert.AnError

	outcome, err := f.uc.Execute(context.Background(), SyncCommand{UserID: 1, UserName: "erin", Days: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTransportUnreachable)

	require.NotNil(t, outcome)
	assert.Equal(t, tracker.SyncFailed, outcome.Status)
	assert.Zero(t, f.gateway.fetched, "window is not attempted without a token")

	// The stamp is written anyway so the scheduler backs off.
	integration := f.integrations.byUser[1]
	require.NotNil(t, integration.LastSyncedAt)
	assert.Equal(t, 1, integration.FailureStreak)
	assert.Empty(t, f.notifier.sent, "one failure is below the notify threshold")
}

func TestSyncWindowReconnectEmailOnce(t *testing.T) {
	f := newSyncFixture(t, okDay())
	f.tokens.err = assert.AnError

	for i := 0; i < 5; i++ {
		_, err := f.uc.Execute(context.Background(), SyncCommand{UserID: 1, UserName: "erin", Days: 1})
		require.Error(t, err)
	}

	assert.Equal(t, 5, f.integrations.byUser[1].FailureStreak)
	assert.Equal(t, []string{"household@example.com"}, f.notifier.sent, "notice goes out once per streak")
	require.NotNil(t, f.integrations.byUser[1].NotifiedAt)
}

func TestSyncWindowStreakResetsOnSuccess(t *testing.T) {
	f := newSyncFixture(t, okDay())

	f.tokens.err = assert.AnError
	for i := 0; i < 3; i++ {
		_, _ = f.uc.Execute(context.Background(), SyncCommand{UserID: 1, Days: 1})
	}
	require.NotNil(t, f.integrations.byUser[1].NotifiedAt)

	f.tokens.err = nil
	_, err := f.uc.Execute(context.Background(), SyncCommand{UserID: 1, Days: 1})
	require.NoError(t, err)

	integration := f.integrations.byUser[1]
	assert.Zero(t, integration.FailureStreak)
	assert.Nil(t, integration.NotifiedAt, "a success re-arms the reconnect notice")
}

func TestSyncWindowNoIntegration(t *testing.T) {
	f := newSyncFixture(t, okDay())
	delete(f.integrations.byUser, 1)

	_, err := f.uc.Execute(context.Background(), SyncCommand{UserID: 1, Days: 1})
	assert.Error(t, err)
}

func TestSyncWindowConcurrentGuard(t *testing.T) {
	f := newSyncFixture(t, okDay())
	f.gateway.block = make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	firstDone := make(chan error, 1)
	go func() {
		defer wg.Done()
		_, err := f.uc.Execute(context.Background(), SyncCommand{UserID: 1, Days: 1})
		firstDone <- err
	}()

	// Wait until the first run is inside the gateway, then race it.
	require.Eventually(t, func() bool { return f.gateway.fetched > 0 }, time.Second, time.Millisecond)

	_, err := f.uc.Execute(context.Background(), SyncCommand{UserID: 1, Days: 1})
	assert.ErrorIs(t, err, apperrors.ErrSyncInProgress)

	close(f.gateway.block)
	wg.Wait()
	require.NoError(t, <-firstDone)

	// The guard releases once the first run finishes.
	f.gateway.block = nil
	_, err = f.uc.Execute(context.Background(), SyncCommand{UserID: 1, Days: 1})
	assert.NoError(t, err)
}

func TestSyncStatus(t *testing.T) {
	repo := newFakeIntegrationRepo()
	uc := NewSyncStatusUseCase(repo, 30)

	status, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.True(t, status.Stale)

	integration, err := tracker.NewIntegration(1, "fitbit", "ABC123")
	require.NoError(t, err)
	recent := time.Now().UTC().Add(-5 * time.Minute)
	integration.LastSyncedAt = &recent
	repo.byUser[1] = integration

	status, err = uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, "fitbit", status.Provider)
	assert.False(t, status.Stale)

	old := time.Now().UTC().Add(-2 * time.Hour)
	integration.LastSyncedAt = &old
	status, err = uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, status.Stale)
}

func TestDisconnect(t *testing.T) {
	repo := newFakeIntegrationRepo()
	integration, err := tracker.NewIntegration(1, "fitbit", "ABC123")
	require.NoError(t, err)
	integration.ApplyTokens("access", "refresh", time.Now().Add(time.Hour))
	repo.byUser[1] = integration

	uc := NewDisconnectUseCase(repo, testLogger())
	require.NoError(t, uc.Execute(context.Background(), DisconnectCommand{UserID: 1}))

	assert.False(t, repo.byUser[1].Active)
	assert.Empty(t, repo.byUser[1].AccessToken)

	err = uc.Execute(context.Background(), DisconnectCommand{UserID: 2})
	assert.Error(t, err)
}
