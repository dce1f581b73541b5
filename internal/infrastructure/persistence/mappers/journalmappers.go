package mappers

import (
	"vita/internal/domain/journal"
	"vita/internal/infrastructure/persistence/models"
	"vita/internal/shared/mapper"
)

// JournalMapper handles the conversion between journal entry entities
// and their persistence models.
type JournalMapper struct{}

func NewJournalMapper() *JournalMapper {
	return &JournalMapper{}
}

func (m *JournalMapper) MoodToModel(entity *journal.MoodEntry) *models.MoodEntryModel {
	if entity == nil {
		return nil
	}
	return &models.MoodEntryModel{
		ID:        entity.ID,
		UserID:    entity.UserID,
		Date:      entity.Date,
		Rating:    entity.Rating,
		Note:      entity.Note,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func (m *JournalMapper) MoodToDomain(model *models.MoodEntryModel) *journal.MoodEntry {
	if model == nil {
		return nil
	}
	return &journal.MoodEntry{
		ID:        model.ID,
		UserID:    model.UserID,
		Date:      model.Date,
		Rating:    model.Rating,
		Note:      model.Note,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func (m *JournalMapper) MoodToDomainList(items []*models.MoodEntryModel) []*journal.MoodEntry {
	return mapper.MapSlicePtr(items, m.MoodToDomain)
}

func (m *JournalMapper) MedicationToModel(entity *journal.MedicationEntry) *models.MedicationEntryModel {
	if entity == nil {
		return nil
	}
	return &models.MedicationEntryModel{
		ID:        entity.ID,
		UserID:    entity.UserID,
		Name:      entity.Name,
		DoseMG:    entity.DoseMG,
		TakenAt:   entity.TakenAt,
		Note:      entity.Note,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func (m *JournalMapper) MedicationToDomain(model *models.MedicationEntryModel) *journal.MedicationEntry {
	if model == nil {
		return nil
	}
	return &journal.MedicationEntry{
		ID:        model.ID,
		UserID:    model.UserID,
		Name:      model.Name,
		DoseMG:    model.DoseMG,
		TakenAt:   model.TakenAt,
		Note:      model.Note,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func (m *JournalMapper) MedicationToDomainList(items []*models.MedicationEntryModel) []*journal.MedicationEntry {
	return mapper.MapSlicePtr(items, m.MedicationToDomain)
}

func (m *JournalMapper) SeizureToModel(entity *journal.SeizureEntry) *models.SeizureEntryModel {
	if entity == nil {
		return nil
	}
	return &models.SeizureEntryModel{
		ID:              entity.ID,
		UserID:          entity.UserID,
		OccurredAt:      entity.OccurredAt,
		DurationSeconds: entity.DurationSeconds,
		Kind:            entity.Kind,
		Note:            entity.Note,
		CreatedAt:       entity.CreatedAt,
		UpdatedAt:       entity.UpdatedAt,
	}
}

func (m *JournalMapper) SeizureToDomain(model *models.SeizureEntryModel) *journal.SeizureEntry {
	if model == nil {
		return nil
	}
	return &journal.SeizureEntry{
		ID:              model.ID,
		UserID:          model.UserID,
		OccurredAt:      model.OccurredAt,
		DurationSeconds: model.DurationSeconds,
		Kind:            model.Kind,
		Note:            model.Note,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func (m *JournalMapper) SeizureToDomainList(items []*models.SeizureEntryModel) []*journal.SeizureEntry {
	return mapper.MapSlicePtr(items, m.SeizureToDomain)
}

func (m *JournalMapper) CycleToModel(entity *journal.CycleEntry) *models.CycleEntryModel {
	if entity == nil {
		return nil
	}
	return &models.CycleEntryModel{
		ID:        entity.ID,
		UserID:    entity.UserID,
		Date:      entity.Date,
		Flow:      entity.Flow,
		Symptoms:  entity.Symptoms,
		Note:      entity.Note,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func (m *JournalMapper) CycleToDomain(model *models.CycleEntryModel) *journal.CycleEntry {
	if model == nil {
		return nil
	}
	return &journal.CycleEntry{
		ID:        model.ID,
		UserID:    model.UserID,
		Date:      model.Date,
		Flow:      model.Flow,
		Symptoms:  model.Symptoms,
		Note:      model.Note,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func (m *JournalMapper) CycleToDomainList(items []*models.CycleEntryModel) []*journal.CycleEntry {
	return mapper.MapSlicePtr(items, m.CycleToDomain)
}
