package usecases

import (
	"context"
	"fmt"

	"vita/internal/domain/tracker"
	"vita/internal/shared/constants"
	apperrors "vita/internal/shared/errors"
	"vita/internal/shared/logger"
)

type CompleteConnectionCommand struct {
	State         string
	Code          string
	ProviderError string
	ActiveUserID  uint
}

type CompleteConnectionResult struct {
	UserID         uint
	UserName       string
	ReactivateUser bool
}

// CompleteConnectionUseCase finishes the tracker OAuth handoff on the
// provider's callback. The pending entry is consumed up front, so every
// exit path leaves no handshake state behind.
type CompleteConnectionUseCase struct {
	client          OAuthClient
	pendingStore    tracker.PendingConnectionStore
	integrationRepo tracker.IntegrationRepository
	logger          logger.Interface
}

func NewCompleteConnectionUseCase(
	client OAuthClient,
	pendingStore tracker.PendingConnectionStore,
	integrationRepo tracker.IntegrationRepository,
	logger logger.Interface,
) *CompleteConnectionUseCase {
	return &CompleteConnectionUseCase{
		client:          client,
		pendingStore:    pendingStore,
		integrationRepo: integrationRepo,
		logger:          logger,
	}
}

func (uc *CompleteConnectionUseCase) Execute(ctx context.Context, cmd CompleteConnectionCommand) (*CompleteConnectionResult, error) {
	// Consumes on read: absent means expired or replayed, and the
	// caller restarts the flow.
	pending, err := uc.pendingStore.Get(ctx, cmd.State)
	if err != nil {
		uc.logger.Warnw("pending connection not found", "state", cmd.State, "error", err)
		return nil, err
	}

	if cmd.ProviderError != "" {
		uc.logger.Infow("authorization denied at provider",
			"user_id", pending.UserID,
			"provider_error", cmd.ProviderError)
		return nil, fmt.Errorf("%w: %s", apperrors.ErrAuthorizationDenied, cmd.ProviderError)
	}

	if cmd.Code == "" {
		return nil, apperrors.ErrMissingCode
	}

	accessToken, refreshToken, expiresAt, err := uc.client.ExchangeCode(ctx, cmd.Code)
	if err != nil {
		// Terminal: authorization codes are single-use.
		uc.logger.Errorw("token exchange failed", "user_id", pending.UserID, "error", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTokenExchangeFailed, err)
	}

	providerUserID, err := uc.client.GetAccountID(ctx, accessToken)
	if err != nil {
		uc.logger.Warnw("failed to fetch provider account ID", "user_id", pending.UserID, "error", err)
		providerUserID = "unknown"
	}

	integration, err := tracker.NewIntegration(pending.UserID, constants.ProviderFitbit, providerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to build integration: %w", err)
	}
	integration.ApplyTokens(accessToken, refreshToken, expiresAt)

	// The integration belongs to the user who initiated the redirect,
	// not whichever profile is active at callback time.
	if err := uc.integrationRepo.Upsert(ctx, integration); err != nil {
		uc.logger.Errorw("failed to save integration", "user_id", pending.UserID, "error", err)
		return nil, fmt.Errorf("failed to save integration: %w", err)
	}

	uc.logger.Infow("tracker connected",
		"user_id", pending.UserID,
		"provider_user_id", providerUserID)

	return &CompleteConnectionResult{
		UserID:         pending.UserID,
		UserName:       pending.UserName,
		ReactivateUser: cmd.ActiveUserID != pending.UserID,
	}, nil
}
