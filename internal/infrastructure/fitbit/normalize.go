package fitbit

import (
	"encoding/json"
	"fmt"
	"time"

	"vita/internal/domain/tracker"
)

// mealSlots maps Fitbit meal-type codes to named slots.
var mealSlots = map[int]string{
	1: "breakfast",
	2: "morning_snack",
	3: "lunch",
	4: "afternoon_snack",
	5: "dinner",
	7: "evening_snack",
}

// MealSlot returns the named slot for a meal-type code. Unknown codes
// fall back to "snack".
func MealSlot(code int) string {
	if slot, ok := mealSlots[code]; ok {
		return slot
	}
	return "snack"
}

// NormalizeActivity converts a raw activity payload to a record for date.
func NormalizeActivity(userID uint, date time.Time, raw []byte) (*tracker.ActivityRecord, error) {
	var payload activityPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse activity payload: %w", err)
	}

	var distance float64
	if len(payload.Summary.Distances) > 0 {
		distance = payload.Summary.Distances[0].Distance
	}

	return &tracker.ActivityRecord{
		UserID:        userID,
		Date:          date,
		Steps:         payload.Summary.Steps,
		DistanceKM:    distance,
		CaloriesOut:   payload.Summary.CaloriesOut,
		ActiveMinutes: payload.Summary.VeryActiveMinutes + payload.Summary.FairlyActiveMinutes,
	}, nil
}

// NormalizeWeight converts a raw weight payload to a record for date.
// Shapes are tried in a fixed priority order: manual log entries first,
// then the body-composition summary, then a bare summary number. A
// payload matching none of them yields a nil record.
func NormalizeWeight(userID uint, date time.Time, raw []byte) (*tracker.WeightRecord, error) {
	var payload weightPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse weight payload: %w", err)
	}

	record := &tracker.WeightRecord{
		UserID: userID,
		Date:   date,
	}

	if len(payload.Weight) > 0 {
		var logs []weightLogEntry
		if err := json.Unmarshal(payload.Weight, &logs); err == nil && len(logs) > 0 {
			record.WeightLbs = InferPounds(logs[0].Weight)
			record.BMI = logs[0].BMI
			record.BodyFatPct = logs[0].Fat
			return record, nil
		}
	}

	if payload.Body != nil && payload.Body.Weight != 0 {
		record.WeightLbs = InferPounds(payload.Body.Weight)
		record.BMI = payload.Body.BMI
		record.BodyFatPct = payload.Body.Fat
		return record, nil
	}

	if len(payload.Weight) > 0 {
		var bare float64
		if err := json.Unmarshal(payload.Weight, &bare); err == nil && bare != 0 {
			record.WeightLbs = InferPounds(bare)
			return record, nil
		}
	}

	return nil, nil
}

// NormalizeFood converts a raw food payload to a record for date.
func NormalizeFood(userID uint, date time.Time, raw []byte) (*tracker.FoodRecord, error) {
	var payload foodPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse food payload: %w", err)
	}

	entries := make([]tracker.FoodItem, 0, len(payload.Foods))
	for _, f := range payload.Foods {
		loggedAt := date
		if t, err := time.Parse("2006-01-02", f.LogDate); err == nil {
			loggedAt = t
		}
		entries = append(entries, tracker.FoodItem{
			Name:     f.LoggedFood.Name,
			Calories: f.LoggedFood.Calories,
			Meal:     MealSlot(f.LoggedFood.MealTypeID),
			LoggedAt: loggedAt,
		})
	}

	return &tracker.FoodRecord{
		UserID:        userID,
		Date:          date,
		TotalCalories: payload.Summary.Calories,
		WaterML:       payload.Summary.Water,
		Entries:       entries,
	}, nil
}

// NormalizeSleep converts a raw sleep payload to a record for date.
// The session flagged as main sleep wins; otherwise the first one.
// Stored sleep duration is the in-bed time minus wake-stage minutes.
func NormalizeSleep(userID uint, date time.Time, raw []byte) (*tracker.SleepRecord, error) {
	var payload sleepPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse sleep payload: %w", err)
	}

	if len(payload.Sleep) == 0 {
		return nil, nil
	}

	session := payload.Sleep[0]
	for _, s := range payload.Sleep {
		if s.IsMainSleep {
			session = s
			break
		}
	}

	record := &tracker.SleepRecord{
		UserID:        userID,
		Date:          date,
		MinutesAsleep: session.TimeInBed - session.Levels.Summary.Wake.Minutes,
		EfficiencyPct: session.Efficiency,
		DeepMinutes:   session.Levels.Summary.Deep.Minutes,
		LightMinutes:  session.Levels.Summary.Light.Minutes,
		RemMinutes:    session.Levels.Summary.Rem.Minutes,
		WakeMinutes:   session.Levels.Summary.Wake.Minutes,
	}

	if t, err := time.Parse("2006-01-02T15:04:05.000", session.StartTime); err == nil {
		record.StartedAt = t
	}
	if t, err := time.Parse("2006-01-02T15:04:05.000", session.EndTime); err == nil {
		record.EndedAt = t
	}

	return record, nil
}
