package tracker

import "time"

// ActivityRecord is one day of activity totals for a user.
type ActivityRecord struct {
	ID            uint
	UserID        uint
	Date          time.Time
	Steps         int
	DistanceKM    float64
	CaloriesOut   int
	ActiveMinutes int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// WeightRecord is one day's body weight, normalized to pounds.
type WeightRecord struct {
	ID         uint
	UserID     uint
	Date       time.Time
	WeightLbs  float64
	BMI        float64
	BodyFatPct float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FoodItem is a single logged food within a day.
type FoodItem struct {
	Name     string    `json:"name"`
	Calories int       `json:"calories"`
	Meal     string    `json:"meal"`
	LoggedAt time.Time `json:"logged_at"`
}

// FoodRecord is one day of food logs plus the day's totals.
type FoodRecord struct {
	ID            uint
	UserID        uint
	Date          time.Time
	TotalCalories int
	WaterML       float64
	Entries       []FoodItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SleepRecord is one day's main sleep session. MinutesAsleep is the
// in-bed duration minus wake-stage minutes.
type SleepRecord struct {
	ID            uint
	UserID        uint
	Date          time.Time
	StartedAt     time.Time
	EndedAt       time.Time
	MinutesAsleep int
	EfficiencyPct int
	DeepMinutes   int
	LightMinutes  int
	RemMinutes    int
	WakeMinutes   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
