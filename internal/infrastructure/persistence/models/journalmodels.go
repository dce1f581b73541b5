package models

import "time"

// MoodEntryModel represents the database persistence model for mood entries.
type MoodEntryModel struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"not null;index:idx_mood_user_date"`
	Date      time.Time `gorm:"type:date;not null;index:idx_mood_user_date"`
	Rating    int       `gorm:"not null"`
	Note      string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MoodEntryModel) TableName() string {
	return "mood_entries"
}

// MedicationEntryModel represents the database persistence model for medication entries.
type MedicationEntryModel struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"not null;index:idx_medication_user_taken"`
	Name      string    `gorm:"not null;size:128"`
	DoseMG    float64   `gorm:"default:0;column:dose_mg"`
	TakenAt   time.Time `gorm:"not null;index:idx_medication_user_taken"`
	Note      string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MedicationEntryModel) TableName() string {
	return "medication_entries"
}

// SeizureEntryModel represents the database persistence model for seizure entries.
type SeizureEntryModel struct {
	ID              uint      `gorm:"primarykey"`
	UserID          uint      `gorm:"not null;index:idx_seizure_user_occurred"`
	OccurredAt      time.Time `gorm:"not null;index:idx_seizure_user_occurred"`
	DurationSeconds int       `gorm:"default:0"`
	Kind            string    `gorm:"size:64"`
	Note            string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (SeizureEntryModel) TableName() string {
	return "seizure_entries"
}

// CycleEntryModel represents the database persistence model for cycle entries.
type CycleEntryModel struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"not null;index:idx_cycle_user_date"`
	Date      time.Time `gorm:"type:date;not null;index:idx_cycle_user_date"`
	Flow      string    `gorm:"size:32"`
	Symptoms  string    `gorm:"type:text"`
	Note      string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CycleEntryModel) TableName() string {
	return "cycle_entries"
}
