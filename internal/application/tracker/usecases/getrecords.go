package usecases

import (
	"context"
	"fmt"
	"time"

	"vita/internal/domain/tracker"
)

// RecordsResult bundles the four synced domains over one date range.
type RecordsResult struct {
	Activities []*tracker.ActivityRecord `json:"activities"`
	Weights    []*tracker.WeightRecord   `json:"weights"`
	Foods      []*tracker.FoodRecord     `json:"foods"`
	Sleep      []*tracker.SleepRecord    `json:"sleep"`
}

type GetRecordsUseCase struct {
	activityRepo tracker.ActivityRepository
	weightRepo   tracker.WeightRepository
	foodRepo     tracker.FoodRepository
	sleepRepo    tracker.SleepRepository
}

func NewGetRecordsUseCase(
	activityRepo tracker.ActivityRepository,
	weightRepo tracker.WeightRepository,
	foodRepo tracker.FoodRepository,
	sleepRepo tracker.SleepRepository,
) *GetRecordsUseCase {
	return &GetRecordsUseCase{
		activityRepo: activityRepo,
		weightRepo:   weightRepo,
		foodRepo:     foodRepo,
		sleepRepo:    sleepRepo,
	}
}

func (uc *GetRecordsUseCase) Execute(ctx context.Context, userID uint, from, to time.Time) (*RecordsResult, error) {
	activities, err := uc.activityRepo.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity records: %w", err)
	}
	weights, err := uc.weightRepo.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list weight records: %w", err)
	}
	foods, err := uc.foodRepo.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list food records: %w", err)
	}
	sleep, err := uc.sleepRepo.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list sleep records: %w", err)
	}

	return &RecordsResult{
		Activities: activities,
		Weights:    weights,
		Foods:      foods,
		Sleep:      sleep,
	}, nil
}
