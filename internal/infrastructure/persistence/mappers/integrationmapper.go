package mappers

import (
	"vita/internal/domain/tracker"
	"vita/internal/infrastructure/persistence/models"
	"vita/internal/shared/mapper"
)

// IntegrationMapper handles the conversion between domain entities and persistence models.
type IntegrationMapper interface {
	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *tracker.Integration) *models.IntegrationModel

	// ToDomain converts a persistence model to a domain entity.
	ToDomain(model *models.IntegrationModel) *tracker.Integration

	// ToDomainList converts multiple persistence models to domain entities.
	ToDomainList(models []*models.IntegrationModel) []*tracker.Integration
}

// IntegrationMapperImpl is the concrete implementation of IntegrationMapper.
type IntegrationMapperImpl struct{}

// NewIntegrationMapper creates a new IntegrationMapper.
func NewIntegrationMapper() IntegrationMapper {
	return &IntegrationMapperImpl{}
}

// ToModel converts a domain entity to a persistence model.
func (m *IntegrationMapperImpl) ToModel(entity *tracker.Integration) *models.IntegrationModel {
	if entity == nil {
		return nil
	}
	return &models.IntegrationModel{
		ID:             entity.ID,
		UserID:         entity.UserID,
		Provider:       entity.Provider,
		ProviderUserID: entity.ProviderUserID,
		AccessToken:    entity.AccessToken,
		RefreshToken:   entity.RefreshToken,
		TokenExpiresAt: entity.TokenExpiresAt,
		LastSyncedAt:   entity.LastSyncedAt,
		FailureStreak:  entity.FailureStreak,
		NotifiedAt:     entity.NotifiedAt,
		Active:         entity.Active,
		CreatedAt:      entity.CreatedAt,
		UpdatedAt:      entity.UpdatedAt,
	}
}

// ToDomain converts a persistence model to a domain entity.
func (m *IntegrationMapperImpl) ToDomain(model *models.IntegrationModel) *tracker.Integration {
	if model == nil {
		return nil
	}
	return &tracker.Integration{
		ID:             model.ID,
		UserID:         model.UserID,
		Provider:       model.Provider,
		ProviderUserID: model.ProviderUserID,
		AccessToken:    model.AccessToken,
		RefreshToken:   model.RefreshToken,
		TokenExpiresAt: model.TokenExpiresAt,
		LastSyncedAt:   model.LastSyncedAt,
		FailureStreak:  model.FailureStreak,
		NotifiedAt:     model.NotifiedAt,
		Active:         model.Active,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

// ToDomainList converts multiple persistence models to domain entities.
func (m *IntegrationMapperImpl) ToDomainList(items []*models.IntegrationModel) []*tracker.Integration {
	return mapper.MapSlicePtr(items, m.ToDomain)
}
