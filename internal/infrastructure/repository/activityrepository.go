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

// ActivityRepository implements the tracker.ActivityRepository interface.
type ActivityRepository struct {
	db     *gorm.DB
	mapper *mappers.RecordMapper
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db *gorm.DB) tracker.ActivityRepository {
	return &ActivityRepository{
		db:     db,
		mapper: mappers.NewRecordMapper(),
	}
}

// Upsert fully replaces the record for (user_id, date); a newer sync
// wins over whatever was stored before.
func (r *ActivityRepository) Upsert(ctx context.Context, record *tracker.ActivityRecord) error {
	model := r.mapper.ActivityToModel(record)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"steps",
			"distance_km",
			"calories_out",
			"active_minutes",
			"updated_at",
		}),
	}).Create(model)

	if result.Error != nil {
		return fmt.Errorf("failed to upsert activity record: %w", result.Error)
	}

	record.ID = model.ID
	return nil
}

func (r *ActivityRepository) GetByUserAndDate(ctx context.Context, userID uint, date time.Time) (*tracker.ActivityRecord, error) {
	var model models.ActivityRecordModel
	err := r.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get activity record: %w", err)
	}
	return r.mapper.ActivityToDomain(&model), nil
}

func (r *ActivityRepository) ListByUserAndRange(ctx context.Context, userID uint, from, to time.Time) ([]*tracker.ActivityRecord, error) {
	var recordModels []*models.ActivityRecordModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&recordModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list activity records: %w", err)
	}
	return r.mapper.ActivityToDomainList(recordModels), nil
}
