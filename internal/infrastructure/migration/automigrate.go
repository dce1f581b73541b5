package migration

import (
	"vita/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ProfileModel{},
		&models.IntegrationModel{},
		&models.ActivityRecordModel{},
		&models.WeightRecordModel{},
		&models.FoodRecordModel{},
		&models.SleepRecordModel{},
		&models.MoodEntryModel{},
		&models.MedicationEntryModel{},
		&models.SeizureEntryModel{},
		&models.CycleEntryModel{},
	}
}
