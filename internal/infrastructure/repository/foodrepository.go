package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vita/internal/domain/tracker"
	"vita/internal/infrastructure/persistence/mappers"
	"vita/internal/infrastructure/persistence/models"
)

// FoodRepository implements the tracker.FoodRepository interface.
type FoodRepository struct {
	db     *gorm.DB
	mapper *mappers.RecordMapper
}

// NewFoodRepository creates a new FoodRepository.
func NewFoodRepository(db *gorm.DB) tracker.FoodRepository {
	return &FoodRepository{
		db:     db,
		mapper: mappers.NewRecordMapper(),
	}
}

// Upsert fully replaces the record for (user_id, date), including the
// JSON entry list.
func (r *FoodRepository) Upsert(ctx context.Context, record *tracker.FoodRecord) error {
	model := r.mapper.FoodToModel(record)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_calories",
			"water_ml",
			"entries",
			"updated_at",
		}),
	}).Create(model)

	if result.Error != nil {
		return fmt.Errorf("failed to upsert food record: %w", result.Error)
	}

	record.ID = model.ID
	return nil
}

func (r *FoodRepository) GetByUserAndDate(ctx context.Context, userID uint, date time.Time) (*tracker.FoodRecord, error) {
	var model models.FoodRecordModel
	err := r.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get food record: %w", err)
	}
	return r.mapper.FoodToDomain(&model), nil
}

func (r *FoodRepository) ListByUserAndRange(ctx context.Context, userID uint, from, to time.Time) ([]*tracker.FoodRecord, error) {
	var recordModels []*models.FoodRecordModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&recordModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list food records: %w", err)
	}
	return r.mapper.FoodToDomainList(recordModels), nil
}
