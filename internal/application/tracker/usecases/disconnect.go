package usecases

import (
	"context"
	"fmt"

	"vita/internal/domain/tracker"
	apperrors "vita/internal/shared/errors"
	"vita/internal/shared/logger"
)

type DisconnectCommand struct {
	UserID uint
}

// DisconnectUseCase deactivates a tracker integration. The row and its
// synced history are kept; only credentials and the active flag go.
type DisconnectUseCase struct {
	integrationRepo tracker.IntegrationRepository
	logger          logger.Interface
}

func NewDisconnectUseCase(integrationRepo tracker.IntegrationRepository, log logger.Interface) *DisconnectUseCase {
	return &DisconnectUseCase{
		integrationRepo: integrationRepo,
		logger:          log,
	}
}

func (uc *DisconnectUseCase) Execute(ctx context.Context, cmd DisconnectCommand) error {
	integration, err := uc.integrationRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		return fmt.Errorf("failed to load integration: %w", err)
	}
	if integration == nil {
		return apperrors.NewNotFoundError("no tracker integration")
	}

	integration.Deactivate()
	if err := uc.integrationRepo.Update(ctx, integration); err != nil {
		return fmt.Errorf("failed to deactivate integration: %w", err)
	}

	uc.logger.Infow("tracker disconnected", "user_id", cmd.UserID)
	return nil
}
