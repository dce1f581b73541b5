package journal

import (
	"fmt"
	"time"
)

// MoodEntry is one mood rating for a day, with an optional markdown note.
type MoodEntry struct {
	ID        uint
	UserID    uint
	Date      time.Time
	Rating    int
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewMoodEntry(userID uint, date time.Time, rating int, note string) (*MoodEntry, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if rating < 1 || rating > 10 {
		return nil, fmt.Errorf("rating must be between 1 and 10")
	}

	now := time.Now()
	return &MoodEntry{
		UserID:    userID,
		Date:      date,
		Rating:    rating,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (e *MoodEntry) Update(rating int, note string) error {
	if rating < 1 || rating > 10 {
		return fmt.Errorf("rating must be between 1 and 10")
	}
	e.Rating = rating
	e.Note = note
	e.UpdatedAt = time.Now()
	return nil
}

// MedicationEntry records one dose taken.
type MedicationEntry struct {
	ID        uint
	UserID    uint
	Name      string
	DoseMG    float64
	TakenAt   time.Time
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewMedicationEntry(userID uint, name string, doseMG float64, takenAt time.Time, note string) (*MedicationEntry, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("medication name is required")
	}
	if doseMG < 0 {
		return nil, fmt.Errorf("dose must not be negative")
	}

	now := time.Now()
	return &MedicationEntry{
		UserID:    userID,
		Name:      name,
		DoseMG:    doseMG,
		TakenAt:   takenAt,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (e *MedicationEntry) Update(name string, doseMG float64, takenAt time.Time, note string) error {
	if name == "" {
		return fmt.Errorf("medication name is required")
	}
	if doseMG < 0 {
		return fmt.Errorf("dose must not be negative")
	}
	e.Name = name
	e.DoseMG = doseMG
	e.TakenAt = takenAt
	e.Note = note
	e.UpdatedAt = time.Now()
	return nil
}

// SeizureEntry records one seizure event.
type SeizureEntry struct {
	ID              uint
	UserID          uint
	OccurredAt      time.Time
	DurationSeconds int
	Kind            string
	Note            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewSeizureEntry(userID uint, occurredAt time.Time, durationSeconds int, kind, note string) (*SeizureEntry, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if durationSeconds < 0 {
		return nil, fmt.Errorf("duration must not be negative")
	}

	now := time.Now()
	return &SeizureEntry{
		UserID:          userID,
		OccurredAt:      occurredAt,
		DurationSeconds: durationSeconds,
		Kind:            kind,
		Note:            note,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

func (e *SeizureEntry) Update(occurredAt time.Time, durationSeconds int, kind, note string) error {
	if durationSeconds < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	e.OccurredAt = occurredAt
	e.DurationSeconds = durationSeconds
	e.Kind = kind
	e.Note = note
	e.UpdatedAt = time.Now()
	return nil
}

// CycleEntry records one day of menstrual-cycle tracking.
type CycleEntry struct {
	ID        uint
	UserID    uint
	Date      time.Time
	Flow      string
	Symptoms  string
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCycleEntry(userID uint, date time.Time, flow, symptoms, note string) (*CycleEntry, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	now := time.Now()
	return &CycleEntry{
		UserID:    userID,
		Date:      date,
		Flow:      flow,
		Symptoms:  symptoms,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (e *CycleEntry) Update(flow, symptoms, note string) {
	e.Flow = flow
	e.Symptoms = symptoms
	e.Note = note
	e.UpdatedAt = time.Now()
}
