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

// WeightRepository implements the tracker.WeightRepository interface.
type WeightRepository struct {
	db     *gorm.DB
	mapper *mappers.RecordMapper
}

// NewWeightRepository creates a new WeightRepository.
func NewWeightRepository(db *gorm.DB) tracker.WeightRepository {
	return &WeightRepository{
		db:     db,
		mapper: mappers.NewRecordMapper(),
	}
}

// Upsert fully replaces the record for (user_id, date).
func (r *WeightRepository) Upsert(ctx context.Context, record *tracker.WeightRecord) error {
	model := r.mapper.WeightToModel(record)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"weight_lbs",
			"bmi",
			"body_fat_pct",
			"updated_at",
		}),
	}).Create(model)

	if result.Error != nil {
		return fmt.Errorf("failed to upsert weight record: %w", result.Error)
	}

	record.ID = model.ID
	return nil
}

func (r *WeightRepository) GetByUserAndDate(ctx context.Context, userID uint, date time.Time) (*tracker.WeightRecord, error) {
	var model models.WeightRecordModel
	err := r.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get weight record: %w", err)
	}
	return r.mapper.WeightToDomain(&model), nil
}

func (r *WeightRepository) ListByUserAndRange(ctx context.Context, userID uint, from, to time.Time) ([]*tracker.WeightRecord, error) {
	var recordModels []*models.WeightRecordModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&recordModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list weight records: %w", err)
	}
	return r.mapper.WeightToDomainList(recordModels), nil
}
