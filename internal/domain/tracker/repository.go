package tracker

import (
	"context"
	"time"
)

// IntegrationRepository persists tracker integrations.
type IntegrationRepository interface {
	Upsert(ctx context.Context, integration *Integration) error
	GetByUserID(ctx context.Context, userID uint) (*Integration, error)
	GetByProviderUserID(ctx context.Context, provider, providerUserID string) (*Integration, error)
	ListActive(ctx context.Context) ([]*Integration, error)
	Update(ctx context.Context, integration *Integration) error
	Delete(ctx context.Context, userID uint) error
}

// ActivityRepository persists daily activity records.
type ActivityRepository interface {
	Upsert(ctx context.Context, record *ActivityRecord) error
	GetByUserAndDate(ctx context.Context, userID uint, date time.Time) (*ActivityRecord, error)
	ListByUserAndRange(ctx context.Context, userID uint, from, to time.Time) ([]*ActivityRecord, error)
}

// WeightRepository persists daily weight records.
type WeightRepository interface {
	Upsert(ctx context.Context, record *WeightRecord) error
	GetByUserAndDate(ctx context.Context, userID uint, date time.Time) (*WeightRecord, error)
	ListByUserAndRange(ctx context.Context, userID uint, from, to time.Time) ([]*WeightRecord, error)
}

// FoodRepository persists daily food records.
type FoodRepository interface {
	Upsert(ctx context.Context, record *FoodRecord) error
	GetByUserAndDate(ctx context.Context, userID uint, date time.Time) (*FoodRecord, error)
	ListByUserAndRange(ctx context.Context, userID uint, from, to time.Time) ([]*FoodRecord, error)
}

// SleepRepository persists daily sleep records.
type SleepRepository interface {
	Upsert(ctx context.Context, record *SleepRecord) error
	GetByUserAndDate(ctx context.Context, userID uint, date time.Time) (*SleepRecord, error)
	ListByUserAndRange(ctx context.Context, userID uint, from, to time.Time) ([]*SleepRecord, error)
}

// PendingConnectionStore holds in-flight OAuth handshakes keyed by state.
// Get consumes the entry; a second read of the same state misses.
type PendingConnectionStore interface {
	Set(ctx context.Context, state string, pending *PendingConnection, ttl time.Duration) error
	Get(ctx context.Context, state string) (*PendingConnection, error)
}
