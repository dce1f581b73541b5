package usecases

import (
	"context"
	"fmt"
	"time"

	"vita/internal/domain/tracker"
	"vita/internal/infrastructure/auth"
	"vita/internal/shared/logger"
)

// PendingTTL bounds how long a redirect round-trip may take before the
// handshake expires.
const PendingTTL = 10 * time.Minute

// OAuthClient is the slice of the provider client the handoff needs.
type OAuthClient interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (accessToken, refreshToken string, expiresAt time.Time, err error)
	GetAccountID(ctx context.Context, accessToken string) (string, error)
}

type BeginConnectionCommand struct {
	UserID    uint
	UserName  string
	Expecting bool
}

type BeginConnectionResult struct {
	AuthURL string
	State   string
}

// BeginConnectionUseCase starts the tracker OAuth handoff: it parks the
// initiating user in the pending store and sends the browser to the
// provider's consent page.
type BeginConnectionUseCase struct {
	client       OAuthClient
	pendingStore tracker.PendingConnectionStore
	logger       logger.Interface
}

func NewBeginConnectionUseCase(
	client OAuthClient,
	pendingStore tracker.PendingConnectionStore,
	logger logger.Interface,
) *BeginConnectionUseCase {
	return &BeginConnectionUseCase{
		client:       client,
		pendingStore: pendingStore,
		logger:       logger,
	}
}

func (uc *BeginConnectionUseCase) Execute(ctx context.Context, cmd BeginConnectionCommand) (*BeginConnectionResult, error) {
	if cmd.UserID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	state, err := auth.GenerateState()
	if err != nil {
		uc.logger.Errorw("failed to generate state", "error", err)
		return nil, fmt.Errorf("failed to generate state: %w", err)
	}

	pending := &tracker.PendingConnection{
		UserID:    cmd.UserID,
		UserName:  cmd.UserName,
		Expecting: cmd.Expecting,
	}

	// Each begin gets a fresh state; a stale earlier entry simply
	// expires on its own TTL.
	if err := uc.pendingStore.Set(ctx, state, pending, PendingTTL); err != nil {
		uc.logger.Errorw("failed to store pending connection", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to store pending connection: %w", err)
	}

	authURL := uc.client.GetAuthURL(state)

	uc.logger.Infow("tracker connection initiated", "user_id", cmd.UserID, "state", state)

	return &BeginConnectionResult{
		AuthURL: authURL,
		State:   state,
	}, nil
}
