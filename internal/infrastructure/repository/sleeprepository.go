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

// SleepRepository implements the tracker.SleepRepository interface.
type SleepRepository struct {
	db     *gorm.DB
	mapper *mappers.RecordMapper
}

// NewSleepRepository creates a new SleepRepository.
func NewSleepRepository(db *gorm.DB) tracker.SleepRepository {
	return &SleepRepository{
		db:     db,
		mapper: mappers.NewRecordMapper(),
	}
}

// Upsert fully replaces the record for (user_id, date).
func (r *SleepRepository) Upsert(ctx context.Context, record *tracker.SleepRecord) error {
	model := r.mapper.SleepToModel(record)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"started_at",
			"ended_at",
			"minutes_asleep",
			"efficiency_pct",
			"deep_minutes",
			"light_minutes",
			"rem_minutes",
			"wake_minutes",
			"updated_at",
		}),
	}).Create(model)

	if result.Error != nil {
		return fmt.Errorf("failed to upsert sleep record: %w", result.Error)
	}

	record.ID = model.ID
	return nil
}

func (r *SleepRepository) GetByUserAndDate(ctx context.Context, userID uint, date time.Time) (*tracker.SleepRecord, error) {
	var model models.SleepRecordModel
	err := r.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sleep record: %w", err)
	}
	return r.mapper.SleepToDomain(&model), nil
}

func (r *SleepRepository) ListByUserAndRange(ctx context.Context, userID uint, from, to time.Time) ([]*tracker.SleepRecord, error) {
	var recordModels []*models.SleepRecordModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&recordModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sleep records: %w", err)
	}
	return r.mapper.SleepToDomainList(recordModels), nil
}
