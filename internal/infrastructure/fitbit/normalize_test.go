package fitbit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)

func TestNormalizeActivity(t *testing.T) {
	payload := []byte(`{
		"summary": {
			"steps": 9500,
			"caloriesOut": 2300,
			"veryActiveMinutes": 25,
			"fairlyActiveMinutes": 40,
			"distances": [
				{"activity": "total", "distance": 6.8},
				{"activity": "tracker", "distance": 6.5}
			]
		}
	}`)

	record, err := NormalizeActivity(42, testDate, payload)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, uint(42), record.UserID)
	assert.Equal(t, testDate, record.Date)
	assert.Equal(t, 9500, record.Steps)
	assert.Equal(t, 2300, record.CaloriesOut)
	assert.InDelta(t, 6.8, record.DistanceKM, 0.0001)
	assert.Equal(t, 65, record.ActiveMinutes)
}

func TestNormalizeActivity_MissingFields(t *testing.T) {
	record, err := NormalizeActivity(42, testDate, []byte(`{"summary": {}}`))
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, 0, record.Steps)
	assert.Equal(t, 0.0, record.DistanceKM)
	assert.Equal(t, 0, record.ActiveMinutes)
}

func TestNormalizeActivity_InvalidJSON(t *testing.T) {
	_, err := NormalizeActivity(42, testDate, []byte(`not json`))
	assert.Error(t, err)
}

func TestNormalizeWeight_LogEntryWins(t *testing.T) {
	payload := []byte(`{
		"weight": [{"weight": 80, "bmi": 24.5, "fat": 21.0}],
		"body": {"weight": 999, "bmi": 99, "fat": 99}
	}`)

	record, err := NormalizeWeight(42, testDate, payload)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.InDelta(t, 80*2.20462, record.WeightLbs, 0.0001)
	assert.InDelta(t, 24.5, record.BMI, 0.0001)
	assert.InDelta(t, 21.0, record.BodyFatPct, 0.0001)
}

func TestNormalizeWeight_BodySummaryFallback(t *testing.T) {
	payload := []byte(`{
		"weight": [],
		"body": {"weight": 12.5, "bmi": 23.1, "fat": 19.5}
	}`)

	record, err := NormalizeWeight(42, testDate, payload)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.InDelta(t, 12.5*14, record.WeightLbs, 0.0001)
	assert.InDelta(t, 23.1, record.BMI, 0.0001)
}

func TestNormalizeWeight_BareSummaryNumber(t *testing.T) {
	record, err := NormalizeWeight(42, testDate, []byte(`{"weight": 165}`))
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.InDelta(t, 165.0, record.WeightLbs, 0.0001)
	assert.Equal(t, 0.0, record.BMI)
}

func TestNormalizeWeight_NoData(t *testing.T) {
	record, err := NormalizeWeight(42, testDate, []byte(`{"weight": []}`))
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestNormalizeFood(t *testing.T) {
	payload := []byte(`{
		"summary": {"calories": 1850, "water": 750},
		"foods": [
			{"logDate": "2025-08-20", "loggedFood": {"name": "Oatmeal", "calories": 300, "mealTypeId": 1}},
			{"logDate": "2025-08-20", "loggedFood": {"name": "Mystery bar", "calories": 200, "mealTypeId": 99}}
		]
	}`)

	record, err := NormalizeFood(42, testDate, payload)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, 1850, record.TotalCalories)
	assert.InDelta(t, 750.0, record.WaterML, 0.0001)
	require.Len(t, record.Entries, 2)
	assert.Equal(t, "Oatmeal", record.Entries[0].Name)
	assert.Equal(t, "breakfast", record.Entries[0].Meal)
	assert.Equal(t, "snack", record.Entries[1].Meal)
}

func TestMealSlot(t *testing.T) {
	assert.Equal(t, "breakfast", MealSlot(1))
	assert.Equal(t, "morning_snack", MealSlot(2))
	assert.Equal(t, "lunch", MealSlot(3))
	assert.Equal(t, "afternoon_snack", MealSlot(4))
	assert.Equal(t, "dinner", MealSlot(5))
	assert.Equal(t, "evening_snack", MealSlot(7))
	assert.Equal(t, "snack", MealSlot(6))
	assert.Equal(t, "snack", MealSlot(99))
}

func TestNormalizeSleep(t *testing.T) {
	payload := []byte(`{
		"sleep": [
			{
				"isMainSleep": false,
				"timeInBed": 60,
				"efficiency": 80,
				"levels": {"summary": {"wake": {"minutes": 5}}}
			},
			{
				"isMainSleep": true,
				"startTime": "2025-08-19T23:10:00.000",
				"endTime": "2025-08-20T07:10:00.000",
				"timeInBed": 480,
				"efficiency": 92,
				"levels": {
					"summary": {
						"deep": {"minutes": 90},
						"light": {"minutes": 240},
						"rem": {"minutes": 105},
						"wake": {"minutes": 45}
					}
				}
			}
		]
	}`)

	record, err := NormalizeSleep(42, testDate, payload)
	require.NoError(t, err)
	require.NotNil(t, record)

	// 480 in bed minus 45 awake
	assert.Equal(t, 435, record.MinutesAsleep)
	assert.Equal(t, 92, record.EfficiencyPct)
	assert.Equal(t, 90, record.DeepMinutes)
	assert.Equal(t, 240, record.LightMinutes)
	assert.Equal(t, 105, record.RemMinutes)
	assert.Equal(t, 45, record.WakeMinutes)
	assert.Equal(t, 2025, record.StartedAt.Year())
}

func TestNormalizeSleep_FirstSessionFallback(t *testing.T) {
	payload := []byte(`{
		"sleep": [
			{"isMainSleep": false, "timeInBed": 100, "efficiency": 85,
			 "levels": {"summary": {"wake": {"minutes": 10}}}}
		]
	}`)

	record, err := NormalizeSleep(42, testDate, payload)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, 90, record.MinutesAsleep)
}

func TestNormalizeSleep_NoSessions(t *testing.T) {
	record, err := NormalizeSleep(42, testDate, []byte(`{"sleep": []}`))
	require.NoError(t, err)
	assert.Nil(t, record)
}
