package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vita/internal/domain/tracker"
	"vita/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.IntegrationModel{},
		&models.ActivityRecordModel{},
		&models.WeightRecordModel{},
		&models.FoodRecordModel{},
		&models.SleepRecordModel{},
	)
	require.NoError(t, err)

	return db
}

func testIntegration(t *testing.T, userID uint) *tracker.Integration {
	integration, err := tracker.NewIntegration(userID, "fitbit", "ABC123")
	require.NoError(t, err)
	integration.ApplyTokens("access-1", "refresh-1", time.Now().Add(8*time.Hour))
	return integration
}

func TestIntegrationRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIntegrationRepository(db)
	ctx := context.Background()

	t.Run("insert new integration", func(t *testing.T) {
		integration := testIntegration(t, 1)
		err := repo.Upsert(ctx, integration)
		assert.NoError(t, err)
		assert.NotZero(t, integration.ID)
	})

	t.Run("upsert on same user and provider replaces tokens", func(t *testing.T) {
		first := testIntegration(t, 2)
		require.NoError(t, repo.Upsert(ctx, first))

		second := testIntegration(t, 2)
		second.ApplyTokens("access-2", "refresh-2", time.Now().Add(8*time.Hour))
		require.NoError(t, repo.Upsert(ctx, second))

		var count int64
		db.Model(&models.IntegrationModel{}).Where("user_id = ?", 2).Count(&count)
		assert.Equal(t, int64(1), count)

		found, err := repo.GetByUserID(ctx, 2)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "access-2", found.AccessToken)
		assert.Equal(t, "refresh-2", found.RefreshToken)
	})

	t.Run("missing integration returns nil without error", func(t *testing.T) {
		found, err := repo.GetByUserID(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestIntegrationRepository_Deactivate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIntegrationRepository(db)
	ctx := context.Background()

	integration := testIntegration(t, 1)
	require.NoError(t, repo.Upsert(ctx, integration))

	integration.Deactivate()
	require.NoError(t, repo.Update(ctx, integration))

	found, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.False(t, found.Active)
	assert.Empty(t, found.AccessToken)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestActivityRepository_UpsertIdempotency(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	date := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)
	record := &tracker.ActivityRecord{UserID: 1, Date: date, Steps: 9000, DistanceKM: 6.1, CaloriesOut: 2100, ActiveMinutes: 50}
	require.NoError(t, repo.Upsert(ctx, record))

	// Same (user, date) again with newer data: exactly one row remains,
	// fully replaced.
	updated := &tracker.ActivityRecord{UserID: 1, Date: date, Steps: 9500, DistanceKM: 6.4, CaloriesOut: 2200, ActiveMinutes: 55}
	require.NoError(t, repo.Upsert(ctx, updated))

	var count int64
	db.Model(&models.ActivityRecordModel{}).Where("user_id = ?", 1).Count(&count)
	assert.Equal(t, int64(1), count)

	found, err := repo.GetByUserAndDate(ctx, 1, date)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 9500, found.Steps)
	assert.Equal(t, 55, found.ActiveMinutes)
}

func TestWeightRepository_UpsertIdempotency(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWeightRepository(db)
	ctx := context.Background()

	date := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, &tracker.WeightRecord{UserID: 1, Date: date, WeightLbs: 170.2, BMI: 24.1}))
	require.NoError(t, repo.Upsert(ctx, &tracker.WeightRecord{UserID: 1, Date: date, WeightLbs: 169.8, BMI: 24.0}))

	var count int64
	db.Model(&models.WeightRecordModel{}).Count(&count)
	assert.Equal(t, int64(1), count)

	found, err := repo.GetByUserAndDate(ctx, 1, date)
	require.NoError(t, err)
	assert.InDelta(t, 169.8, found.WeightLbs, 0.0001)
}

func TestFoodRepository_EntriesRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFoodRepository(db)
	ctx := context.Background()

	date := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)
	record := &tracker.FoodRecord{
		UserID:        1,
		Date:          date,
		TotalCalories: 1850,
		WaterML:       750,
		Entries: []tracker.FoodItem{
			{Name: "Oatmeal", Calories: 300, Meal: "breakfast", LoggedAt: date},
			{Name: "Salad", Calories: 450, Meal: "lunch", LoggedAt: date},
		},
	}
	require.NoError(t, repo.Upsert(ctx, record))

	found, err := repo.GetByUserAndDate(ctx, 1, date)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 1850, found.TotalCalories)
	assert.InDelta(t, 750.0, found.WaterML, 0.0001)
	require.Len(t, found.Entries, 2)
	assert.Equal(t, "breakfast", found.Entries[0].Meal)

	// Replacement swaps the whole entry list, no merging.
	record.Entries = record.Entries[:1]
	require.NoError(t, repo.Upsert(ctx, record))

	found, err = repo.GetByUserAndDate(ctx, 1, date)
	require.NoError(t, err)
	assert.Len(t, found.Entries, 1)
}

func TestSleepRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSleepRepository(db)
	ctx := context.Background()

	date := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, &tracker.SleepRecord{
		UserID: 1, Date: date, MinutesAsleep: 435, EfficiencyPct: 92,
		DeepMinutes: 90, LightMinutes: 240, RemMinutes: 105, WakeMinutes: 45,
	}))

	found, err := repo.GetByUserAndDate(ctx, 1, date)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 435, found.MinutesAsleep)
	assert.Equal(t, 92, found.EfficiencyPct)
}

func TestRecordRepositories_UserIsolation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	date := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, &tracker.ActivityRecord{UserID: 1, Date: date, Steps: 100}))
	require.NoError(t, repo.Upsert(ctx, &tracker.ActivityRecord{UserID: 2, Date: date, Steps: 200}))

	first, err := repo.GetByUserAndDate(ctx, 1, date)
	require.NoError(t, err)
	assert.Equal(t, 100, first.Steps)

	second, err := repo.GetByUserAndDate(ctx, 2, date)
	require.NoError(t, err)
	assert.Equal(t, 200, second.Steps)
}

func TestActivityRepository_ListByUserAndRange(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Upsert(ctx, &tracker.ActivityRecord{
			UserID: 1,
			Date:   base.AddDate(0, 0, i),
			Steps:  1000 * (i + 1),
		}))
	}

	records, err := repo.ListByUserAndRange(ctx, 1, base, base.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 1000, records[0].Steps)
	assert.Equal(t, 2000, records[1].Steps)
}
