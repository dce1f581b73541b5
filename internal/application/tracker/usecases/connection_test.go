package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "vita/internal/shared/errors"
)

func TestBeginConnection(t *testing.T) {
	store := newFakePendingStore()
	client := &fakeOAuthClient{}
	uc := NewBeginConnectionUseCase(client, store, testLogger())

	result, err := uc.Execute(context.Background(), BeginConnectionCommand{
		UserID:    1,
		UserName:  "erin",
		Expecting: true,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.State)
	assert.Contains(t, result.AuthURL, "state="+result.State)

	pending, ok := store.entries[result.State]
	require.True(t, ok)
	assert.Equal(t, uint(1), pending.UserID)
	assert.Equal(t, "erin", pending.UserName)
	assert.True(t, pending.Expecting)
}

func TestBeginConnectionRequiresUser(t *testing.T) {
	uc := NewBeginConnectionUseCase(&fakeOAuthClient{}, newFakePendingStore(), testLogger())

	_, err := uc.Execute(context.Background(), BeginConnectionCommand{UserID: 0})
	assert.Error(t, err)
}

func TestCompleteConnection(t *testing.T) {
	store := newFakePendingStore()
	store.Set(context.Background(), "state-1", pendingFor(2, "sam"), time.Minute)

	client := &fakeOAuthClient{
		accessToken:  "access",
		refreshToken: "refresh",
		expiresAt:    time.Now().Add(time.Hour),
		accountID:    "ABC123",
	}
	repo := newFakeIntegrationRepo()
	uc := NewCompleteConnectionUseCase(client, store, repo, testLogger())

	result, err := uc.Execute(context.Background(), CompleteConnectionCommand{
		State:        "state-1",
		Code:         "code",
		ActiveUserID: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(2), result.UserID)
	assert.Equal(t, "sam", result.UserName)
	assert.False(t, result.ReactivateUser)

	integration := repo.byUser[2]
	require.NotNil(t, integration)
	assert.Equal(t, "ABC123", integration.ProviderUserID)
	assert.Equal(t, "access", integration.AccessToken)
	assert.Equal(t, "refresh", integration.RefreshToken)
	assert.True(t, integration.Active)

	assert.Empty(t, store.entries, "pending entry should be consumed")
}

func TestCompleteConnectionReactivatesInitiator(t *testing.T) {
	store := newFakePendingStore()
	store.Set(context.Background(), "state-1", pendingFor(2, "sam"), time.Minute)

	client := &fakeOAuthClient{accessToken: "access", accountID: "ABC123", expiresAt: time.Now().Add(time.Hour)}
	uc := NewCompleteConnectionUseCase(client, store, newFakeIntegrationRepo(), testLogger())

	// A different profile is active when the callback lands; the result
	// tells the handler to switch back to the initiator.
	result, err := uc.Execute(context.Background(), CompleteConnectionCommand{
		State:        "state-1",
		Code:         "code",
		ActiveUserID: 9,
	})
	require.NoError(t, err)
	assert.True(t, result.ReactivateUser)
}

func TestCompleteConnectionExpiredState(t *testing.T) {
	uc := NewCompleteConnectionUseCase(&fakeOAuthClient{}, newFakePendingStore(), newFakeIntegrationRepo(), testLogger())

	_, err := uc.Execute(context.Background(), CompleteConnectionCommand{State: "gone", Code: "code"})
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
}

func TestCompleteConnectionProviderDenied(t *testing.T) {
	store := newFakePendingStore()
	store.Set(context.Background(), "state-1", pendingFor(2, "sam"), time.Minute)

	uc := NewCompleteConnectionUseCase(&fakeOAuthClient{}, store, newFakeIntegrationRepo(), testLogger())

	_, err := uc.Execute(context.Background(), CompleteConnectionCommand{
		State:         "state-1",
		ProviderError: "access_denied",
	})
	assert.ErrorIs(t, err, apperrors.ErrAuthorizationDenied)
	assert.Empty(t, store.entries, "pending entry consumed even on denial")
}

func TestCompleteConnectionMissingCode(t *testing.T) {
	store := newFakePendingStore()
	store.Set(context.Background(), "state-1", pendingFor(2, "sam"), time.Minute)

	uc := NewCompleteConnectionUseCase(&fakeOAuthClient{}, store, newFakeIntegrationRepo(), testLogger())

	_, err := uc.Execute(context.Background(), CompleteConnectionCommand{State: "state-1"})
	assert.ErrorIs(t, err, apperrors.ErrMissingCode)
	assert.Empty(t, store.entries)
}

func TestCompleteConnectionExchangeFailure(t *testing.T) {
	store := newFakePendingStore()
	store.Set(context.Background(), "state-1", pendingFor(2, "sam"), time.Minute)

	client := &fakeOAuthClient{exchangeErr: assert.AnError}
	repo := newFakeIntegrationRepo()
	uc := NewCompleteConnectionUseCase(client, store, repo, testLogger())

	_, err := uc.Execute(context.Background(), CompleteConnectionCommand{State: "state-1", Code: "code"})
	assert.ErrorIs(t, err, apperrors.ErrTokenExchangeFailed)
	assert.Empty(t, store.entries, "pending entry consumed even on exchange failure")
	assert.Empty(t, repo.byUser)
}

func TestCompleteConnectionAccountLookupTolerated(t *testing.T) {
	store := newFakePendingStore()
	store.Set(context.Background(), "state-1", pendingFor(2, "sam"), time.Minute)

	client := &fakeOAuthClient{
		accessToken: "access",
		expiresAt:   time.Now().Add(time.Hour),
		accountErr:  assert.AnError,
	}
	repo := newFakeIntegrationRepo()
	uc := NewCompleteConnectionUseCase(client, store, repo, testLogger())

	result, err := uc.Execute(context.Background(), CompleteConnectionCommand{State: "state-1", Code: "code", ActiveUserID: 2})
	require.NoError(t, err)
	assert.Equal(t, uint(2), result.UserID)
	assert.Equal(t, "unknown", repo.byUser[2].ProviderUserID)
}
