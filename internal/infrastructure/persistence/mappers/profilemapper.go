package mappers

import (
	"vita/internal/domain/profile"
	"vita/internal/infrastructure/persistence/models"
	"vita/internal/shared/mapper"
)

// ProfileMapper handles the conversion between domain entities and persistence models.
type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToModel(entity *profile.Profile) *models.ProfileModel {
	if entity == nil {
		return nil
	}
	return &models.ProfileModel{
		ID:          entity.ID,
		Name:        entity.Name,
		DisplayName: entity.DisplayName,
		Timezone:    entity.Timezone,
		Expecting:   entity.Expecting,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func (m *ProfileMapper) ToDomain(model *models.ProfileModel) *profile.Profile {
	if model == nil {
		return nil
	}
	return &profile.Profile{
		ID:          model.ID,
		Name:        model.Name,
		DisplayName: model.DisplayName,
		Timezone:    model.Timezone,
		Expecting:   model.Expecting,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func (m *ProfileMapper) ToDomainList(items []*models.ProfileModel) []*profile.Profile {
	return mapper.MapSlicePtr(items, m.ToDomain)
}
