package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vita/internal/domain/tracker"
	"vita/internal/infrastructure/persistence/mappers"
	"vita/internal/infrastructure/persistence/models"
	"vita/internal/shared/errors"
)

// IntegrationRepository implements the tracker.IntegrationRepository interface
// using GORM with Model/Mapper separation.
type IntegrationRepository struct {
	db     *gorm.DB
	mapper mappers.IntegrationMapper
}

// NewIntegrationRepository creates a new IntegrationRepository.
func NewIntegrationRepository(db *gorm.DB) tracker.IntegrationRepository {
	return &IntegrationRepository{
		db:     db,
		mapper: mappers.NewIntegrationMapper(),
	}
}

// Upsert inserts or replaces the integration on (user_id, provider).
// Token fields, activity flag, and timestamps are updated on conflict;
// rows are never hard-deleted here.
func (r *IntegrationRepository) Upsert(ctx context.Context, integration *tracker.Integration) error {
	model := r.mapper.ToModel(integration)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "provider"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"provider_user_id",
			"access_token",
			"refresh_token",
			"token_expires_at",
			"active",
			"updated_at",
		}),
	}).Create(model)

	if result.Error != nil {
		return fmt.Errorf("failed to upsert integration: %w", result.Error)
	}

	integration.ID = model.ID
	return nil
}

func (r *IntegrationRepository) GetByUserID(ctx context.Context, userID uint) (*tracker.Integration, error) {
	var model models.IntegrationModel
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get integration by user ID: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *IntegrationRepository) GetByProviderUserID(ctx context.Context, provider, providerUserID string) (*tracker.Integration, error) {
	var model models.IntegrationModel
	err := r.db.WithContext(ctx).Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get integration: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *IntegrationRepository) ListActive(ctx context.Context) ([]*tracker.Integration, error) {
	var integrationModels []*models.IntegrationModel
	err := r.db.WithContext(ctx).Where("active = ?", true).Find(&integrationModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active integrations: %w", err)
	}
	return r.mapper.ToDomainList(integrationModels), nil
}

func (r *IntegrationRepository) Update(ctx context.Context, integration *tracker.Integration) error {
	model := r.mapper.ToModel(integration)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update integration: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("integration not found")
	}
	return nil
}

func (r *IntegrationRepository) Delete(ctx context.Context, userID uint) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.IntegrationModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete integration: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("integration not found")
	}
	return nil
}
