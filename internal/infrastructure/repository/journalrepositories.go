package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"vita/internal/domain/journal"
	"vita/internal/infrastructure/persistence/mappers"
	"vita/internal/infrastructure/persistence/models"
	"vita/internal/shared/errors"
)

// MoodRepository implements the journal.MoodRepository interface.
type MoodRepository struct {
	db     *gorm.DB
	mapper *mappers.JournalMapper
}

// NewMoodRepository creates a new MoodRepository.
func NewMoodRepository(db *gorm.DB) journal.MoodRepository {
	return &MoodRepository{db: db, mapper: mappers.NewJournalMapper()}
}

func (r *MoodRepository) Create(ctx context.Context, entry *journal.MoodEntry) error {
	model := r.mapper.MoodToModel(entry)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create mood entry: %w", err)
	}
	entry.ID = model.ID
	return nil
}

func (r *MoodRepository) GetByID(ctx context.Context, id uint) (*journal.MoodEntry, error) {
	var model models.MoodEntryModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("mood entry not found")
		}
		return nil, fmt.Errorf("failed to get mood entry: %w", err)
	}
	return r.mapper.MoodToDomain(&model), nil
}

func (r *MoodRepository) ListByUserAndRange(ctx context.Context, userID uint, from, to time.Time) ([]*journal.MoodEntry, error) {
	var entryModels []*models.MoodEntryModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&entryModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}
	return r.mapper.MoodToDomainList(entryModels), nil
}

func (r *MoodRepository) Update(ctx context.Context, entry *journal.MoodEntry) error {
	result := r.db.WithContext(ctx).Save(r.mapper.MoodToModel(entry))
	if result.Error != nil {
		return fmt.Errorf("failed to update mood entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("mood entry not found")
	}
	return nil
}

func (r *MoodRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.MoodEntryModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete mood entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("mood entry not found")
	}
	return nil
}

// MedicationRepository implements the journal.MedicationRepository interface.
type MedicationRepository struct {
	db     *gorm.DB
	mapper *mappers.JournalMapper
}

// NewMedicationRepository creates a new MedicationRepository.
func NewMedicationRepository(db *gorm.DB) journal.MedicationRepository {
	return &MedicationRepository{db: db, mapper: mappers.NewJournalMapper()}
}

func (r *MedicationRepository) Create(ctx context.Context, entry *journal.MedicationEntry) error {
	model := r.mapper.MedicationToModel(entry)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create medication entry: %w", err)
	}
	entry.ID = model.ID
	return nil
}

func (r *MedicationRepository) GetByID(ctx context.Context, id uint) (*journal.MedicationEntry, error) {
	var model models.MedicationEntryModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("medication entry not found")
		}
		return nil, fmt.Errorf("failed to get medication entry: %w", err)
	}
	return r.mapper.MedicationToDomain(&model), nil
}

func (r *MedicationRepository) ListByUserAndRange(ctx context.Context, userID uint, from, to time.Time) ([]*journal.MedicationEntry, error) {
	var entryModels []*models.MedicationEntryModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND taken_at >= ? AND taken_at <= ?", userID, from, to).
		Order("taken_at ASC").
		Find(&entryModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list medication entries: %w", err)
	}
	return r.mapper.MedicationToDomainList(entryModels), nil
}

func (r *MedicationRepository) Update(ctx context.Context, entry *journal.MedicationEntry) error {
	result := r.db.WithContext(ctx).Save(r.mapper.MedicationToModel(entry))
	if result.Error != nil {
		return fmt.Errorf("failed to update medication entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("medication entry not found")
	}
	return nil
}

func (r *MedicationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.MedicationEntryModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete medication entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("medication entry not found")
	}
	return nil
}

// SeizureRepository implements the journal.SeizureRepository interface.
type SeizureRepository struct {
	db     *gorm.DB
	mapper *mappers.JournalMapper
}

// NewSeizureRepository creates a new SeizureRepository.
func NewSeizureRepository(db *gorm.DB) journal.SeizureRepository {
	return &SeizureRepository{db: db, mapper: mappers.NewJournalMapper()}
}

func (r *SeizureRepository) Create(ctx context.Context, entry *journal.SeizureEntry) error {
	model := r.mapper.SeizureToModel(entry)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create seizure entry: %w", err)
	}
	entry.ID = model.ID
	return nil
}

func (r *SeizureRepository) GetByID(ctx context.Context, id uint) (*journal.SeizureEntry, error) {
	var model models.SeizureEntryModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("seizure entry not found")
		}
		return nil, fmt.Errorf("failed to get seizure entry: %w", err)
	}
	return r.mapper.SeizureToDomain(&model), nil
}

func (r *SeizureRepository) ListByUserAndRange(ctx context.Context, userID uint, from, to time.Time) ([]*journal.SeizureEntry, error) {
	var entryModels []*models.SeizureEntryModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at >= ? AND occurred_at <= ?", userID, from, to).
		Order("occurred_at ASC").
		Find(&entryModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list seizure entries: %w", err)
	}
	return r.mapper.SeizureToDomainList(entryModels), nil
}

func (r *SeizureRepository) Update(ctx context.Context, entry *journal.SeizureEntry) error {
	result := r.db.WithContext(ctx).Save(r.mapper.SeizureToModel(entry))
	if result.Error != nil {
		return fmt.Errorf("failed to update seizure entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("seizure entry not found")
	}
	return nil
}

func (r *SeizureRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.SeizureEntryModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete seizure entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("seizure entry not found")
	}
	return nil
}

// CycleRepository implements the journal.CycleRepository interface.
type CycleRepository struct {
	db     *gorm.DB
	mapper *mappers.JournalMapper
}

// NewCycleRepository creates a new CycleRepository.
func NewCycleRepository(db *gorm.DB) journal.CycleRepository {
	return &CycleRepository{db: db, mapper: mappers.NewJournalMapper()}
}

func (r *CycleRepository) Create(ctx context.Context, entry *journal.CycleEntry) error {
	model := r.mapper.CycleToModel(entry)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create cycle entry: %w", err)
	}
	entry.ID = model.ID
	return nil
}

func (r *CycleRepository) GetByID(ctx context.Context, id uint) (*journal.CycleEntry, error) {
	var model models.CycleEntryModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("cycle entry not found")
		}
		return nil, fmt.Errorf("failed to get cycle entry: %w", err)
	}
	return r.mapper.CycleToDomain(&model), nil
}

func (r *CycleRepository) ListByUserAndRange(ctx context.Context, userID uint, from, to time.Time) ([]*journal.CycleEntry, error) {
	var entryModels []*models.CycleEntryModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&entryModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cycle entries: %w", err)
	}
	return r.mapper.CycleToDomainList(entryModels), nil
}

func (r *CycleRepository) Update(ctx context.Context, entry *journal.CycleEntry) error {
	result := r.db.WithContext(ctx).Save(r.mapper.CycleToModel(entry))
	if result.Error != nil {
		return fmt.Errorf("failed to update cycle entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("cycle entry not found")
	}
	return nil
}

func (r *CycleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CycleEntryModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete cycle entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("cycle entry not found")
	}
	return nil
}
