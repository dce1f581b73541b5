package journal

import (
	"context"
	"time"
)

// MoodRepository persists mood entries.
type MoodRepository interface {
	Create(ctx context.Context, entry *MoodEntry) error
	GetByID(ctx context.Context, id uint) (*MoodEntry, error)
	ListByUserAndRange(ctx context.Context, userID uint, from, to time.Time) ([]*MoodEntry, error)
	Update(ctx context.Context, entry *MoodEntry) error
	Delete(ctx context.Context, id uint) error
}

// MedicationRepository persists medication entries.
type MedicationRepository interface {
	Create(ctx context.Context, entry *MedicationEntry) error
	GetByID(ctx context.Context, id uint) (*MedicationEntry, error)
	ListByUserAndRange(ctx context.Context, userID uint, from, to time.Time) ([]*MedicationEntry, error)
	Update(ctx context.Context, entry *MedicationEntry) error
	Delete(ctx context.Context, id uint) error
}

// SeizureRepository persists seizure entries.
type SeizureRepository interface {
	Create(ctx context.Context, entry *SeizureEntry) error
	GetByID(ctx context.Context, id uint) (*SeizureEntry, error)
	ListByUserAndRange(ctx context.Context, userID uint, from, to time.Time) ([]*SeizureEntry, error)
	Update(ctx context.Context, entry *SeizureEntry) error
	Delete(ctx context.Context, id uint) error
}

// CycleRepository persists cycle entries.
type CycleRepository interface {
	Create(ctx context.Context, entry *CycleEntry) error
	GetByID(ctx context.Context, id uint) (*CycleEntry, error)
	ListByUserAndRange(ctx context.Context, userID uint, from, to time.Time) ([]*CycleEntry, error)
	Update(ctx context.Context, entry *CycleEntry) error
	Delete(ctx context.Context, id uint) error
}
