package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityRecordModel represents the database persistence model for daily activity.
type ActivityRecordModel struct {
	ID            uint      `gorm:"primarykey"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_activity_user_date"`
	Date          time.Time `gorm:"type:date;not null;uniqueIndex:idx_activity_user_date"`
	Steps         int       `gorm:"default:0"`
	DistanceKM    float64   `gorm:"default:0;column:distance_km"`
	CaloriesOut   int       `gorm:"default:0"`
	ActiveMinutes int       `gorm:"default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ActivityRecordModel) TableName() string {
	return "activity_records"
}

// WeightRecordModel represents the database persistence model for daily weight.
type WeightRecordModel struct {
	ID         uint      `gorm:"primarykey"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_weight_user_date"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:idx_weight_user_date"`
	WeightLbs  float64   `gorm:"default:0;column:weight_lbs"`
	BMI        float64   `gorm:"default:0;column:bmi"`
	BodyFatPct float64   `gorm:"default:0;column:body_fat_pct"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (WeightRecordModel) TableName() string {
	return "weight_records"
}

// FoodRecordModel represents the database persistence model for daily food logs.
// Entries holds the day's logged items as a JSON document.
type FoodRecordModel struct {
	ID            uint      `gorm:"primarykey"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_food_user_date"`
	Date          time.Time `gorm:"type:date;not null;uniqueIndex:idx_food_user_date"`
	TotalCalories int       `gorm:"default:0"`
	WaterML       float64   `gorm:"default:0;column:water_ml"`
	Entries       datatypes.JSON
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (FoodRecordModel) TableName() string {
	return "food_records"
}

// SleepRecordModel represents the database persistence model for daily sleep.
type SleepRecordModel struct {
	ID            uint      `gorm:"primarykey"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_sleep_user_date"`
	Date          time.Time `gorm:"type:date;not null;uniqueIndex:idx_sleep_user_date"`
	StartedAt     time.Time
	EndedAt       time.Time
	MinutesAsleep int `gorm:"default:0"`
	EfficiencyPct int `gorm:"default:0"`
	DeepMinutes   int `gorm:"default:0"`
	LightMinutes  int `gorm:"default:0"`
	RemMinutes    int `gorm:"default:0"`
	WakeMinutes   int `gorm:"default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (SleepRecordModel) TableName() string {
	return "sleep_records"
}
