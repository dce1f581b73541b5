package mappers

import (
	"encoding/json"

	"gorm.io/datatypes"

	"vita/internal/domain/tracker"
	"vita/internal/infrastructure/persistence/models"
	"vita/internal/shared/mapper"
)

// RecordMapper handles the conversion between daily record entities and
// their persistence models.
type RecordMapper struct{}

func NewRecordMapper() *RecordMapper {
	return &RecordMapper{}
}

func (m *RecordMapper) ActivityToModel(entity *tracker.ActivityRecord) *models.ActivityRecordModel {
	if entity == nil {
		return nil
	}
	return &models.ActivityRecordModel{
		ID:            entity.ID,
		UserID:        entity.UserID,
		Date:          entity.Date,
		Steps:         entity.Steps,
		DistanceKM:    entity.DistanceKM,
		CaloriesOut:   entity.CaloriesOut,
		ActiveMinutes: entity.ActiveMinutes,
		CreatedAt:     entity.CreatedAt,
		UpdatedAt:     entity.UpdatedAt,
	}
}

func (m *RecordMapper) ActivityToDomain(model *models.ActivityRecordModel) *tracker.ActivityRecord {
	if model == nil {
		return nil
	}
	return &tracker.ActivityRecord{
		ID:            model.ID,
		UserID:        model.UserID,
		Date:          model.Date,
		Steps:         model.Steps,
		DistanceKM:    model.DistanceKM,
		CaloriesOut:   model.CaloriesOut,
		ActiveMinutes: model.ActiveMinutes,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func (m *RecordMapper) ActivityToDomainList(items []*models.ActivityRecordModel) []*tracker.ActivityRecord {
	return mapper.MapSlicePtr(items, m.ActivityToDomain)
}

func (m *RecordMapper) WeightToModel(entity *tracker.WeightRecord) *models.WeightRecordModel {
	if entity == nil {
		return nil
	}
	return &models.WeightRecordModel{
		ID:         entity.ID,
		UserID:     entity.UserID,
		Date:       entity.Date,
		WeightLbs:  entity.WeightLbs,
		BMI:        entity.BMI,
		BodyFatPct: entity.BodyFatPct,
		CreatedAt:  entity.CreatedAt,
		UpdatedAt:  entity.UpdatedAt,
	}
}

func (m *RecordMapper) WeightToDomain(model *models.WeightRecordModel) *tracker.WeightRecord {
	if model == nil {
		return nil
	}
	return &tracker.WeightRecord{
		ID:         model.ID,
		UserID:     model.UserID,
		Date:       model.Date,
		WeightLbs:  model.WeightLbs,
		BMI:        model.BMI,
		BodyFatPct: model.BodyFatPct,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func (m *RecordMapper) WeightToDomainList(items []*models.WeightRecordModel) []*tracker.WeightRecord {
	return mapper.MapSlicePtr(items, m.WeightToDomain)
}

// FoodToModel marshals the day's entries into the JSON column. A
// marshal failure degrades to an empty entry list rather than losing
// the day's totals.
func (m *RecordMapper) FoodToModel(entity *tracker.FoodRecord) *models.FoodRecordModel {
	if entity == nil {
		return nil
	}

	var entries datatypes.JSON
	if data, err := json.Marshal(entity.Entries); err == nil {
		entries = datatypes.JSON(data)
	}

	return &models.FoodRecordModel{
		ID:            entity.ID,
		UserID:        entity.UserID,
		Date:          entity.Date,
		TotalCalories: entity.TotalCalories,
		WaterML:       entity.WaterML,
		Entries:       entries,
		CreatedAt:     entity.CreatedAt,
		UpdatedAt:     entity.UpdatedAt,
	}
}

func (m *RecordMapper) FoodToDomain(model *models.FoodRecordModel) *tracker.FoodRecord {
	if model == nil {
		return nil
	}

	var entries []tracker.FoodItem
	if len(model.Entries) > 0 {
		_ = json.Unmarshal(model.Entries, &entries)
	}

	return &tracker.FoodRecord{
		ID:            model.ID,
		UserID:        model.UserID,
		Date:          model.Date,
		TotalCalories: model.TotalCalories,
		WaterML:       model.WaterML,
		Entries:       entries,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func (m *RecordMapper) FoodToDomainList(items []*models.FoodRecordModel) []*tracker.FoodRecord {
	return mapper.MapSlicePtr(items, m.FoodToDomain)
}

func (m *RecordMapper) SleepToModel(entity *tracker.SleepRecord) *models.SleepRecordModel {
	if entity == nil {
		return nil
	}
	return &models.SleepRecordModel{
		ID:            entity.ID,
		UserID:        entity.UserID,
		Date:          entity.Date,
		StartedAt:     entity.StartedAt,
		EndedAt:       entity.EndedAt,
		MinutesAsleep: entity.MinutesAsleep,
		EfficiencyPct: entity.EfficiencyPct,
		DeepMinutes:   entity.DeepMinutes,
		LightMinutes:  entity.LightMinutes,
		RemMinutes:    entity.RemMinutes,
		WakeMinutes:   entity.WakeMinutes,
		CreatedAt:     entity.CreatedAt,
		UpdatedAt:     entity.UpdatedAt,
	}
}

func (m *RecordMapper) SleepToDomain(model *models.SleepRecordModel) *tracker.SleepRecord {
	if model == nil {
		return nil
	}
	return &tracker.SleepRecord{
		ID:            model.ID,
		UserID:        model.UserID,
		Date:          model.Date,
		StartedAt:     model.StartedAt,
		EndedAt:       model.EndedAt,
		MinutesAsleep: model.MinutesAsleep,
		EfficiencyPct: model.EfficiencyPct,
		DeepMinutes:   model.DeepMinutes,
		LightMinutes:  model.LightMinutes,
		RemMinutes:    model.RemMinutes,
		WakeMinutes:   model.WakeMinutes,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func (m *RecordMapper) SleepToDomainList(items []*models.SleepRecordModel) []*tracker.SleepRecord {
	return mapper.MapSlicePtr(items, m.SleepToDomain)
}
