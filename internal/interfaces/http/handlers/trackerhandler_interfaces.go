package handlers

import (
	"context"
	"time"

	profileDTO "vita/internal/application/profile/dto"
	trackerUsecases "vita/internal/application/tracker/usecases"
	"vita/internal/domain/tracker"
)

// Narrow views of the tracker use cases, kept as interfaces so handler
// tests can substitute them.

type BeginConnectionExecutor interface {
	Execute(ctx context.Context, cmd trackerUsecases.BeginConnectionCommand) (*trackerUsecases.BeginConnectionResult, error)
}

type CompleteConnectionExecutor interface {
	Execute(ctx context.Context, cmd trackerUsecases.CompleteConnectionCommand) (*trackerUsecases.CompleteConnectionResult, error)
}

type SyncExecutor interface {
	Execute(ctx context.Context, cmd trackerUsecases.SyncCommand) (*tracker.SyncOutcome, error)
}

type SyncStatusExecutor interface {
	Execute(ctx context.Context, userID uint) (*trackerUsecases.SyncStatusResult, error)
}

type DisconnectExecutor interface {
	Execute(ctx context.Context, cmd trackerUsecases.DisconnectCommand) error
}

type RecordsExecutor interface {
	Execute(ctx context.Context, userID uint, from, to time.Time) (*trackerUsecases.RecordsResult, error)
}

type ProfileReader interface {
	Get(ctx context.Context, id uint) (*profileDTO.ProfileDTO, error)
}

type ProfileTokenIssuer interface {
	Generate(userID uint, userName string) (string, time.Time, error)
}
