package dto

import (
	"time"

	"vita/internal/domain/journal"
	"vita/internal/shared/mapper"
)

type MoodEntryDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Date      string    `json:"date"`
	Rating    int       `json:"rating"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MedicationEntryDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name"`
	DoseMG    float64   `json:"dose_mg"`
	TakenAt   time.Time `json:"taken_at"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SeizureEntryDTO struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	OccurredAt      time.Time `json:"occurred_at"`
	DurationSeconds int       `json:"duration_seconds"`
	Kind            string    `json:"kind"`
	Note            string    `json:"note"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CycleEntryDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Date      string    `json:"date"`
	Flow      string    `json:"flow"`
	Symptoms  string    `json:"symptoms"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateMoodRequest struct {
	Date   string `json:"date" binding:"required,datetime=2006-01-02"`
	Rating int    `json:"rating" binding:"required,min=1,max=10"`
	Note   string `json:"note"`
}

type UpdateMoodRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=10"`
	Note   string `json:"note"`
}

type CreateMedicationRequest struct {
	Name    string    `json:"name" binding:"required,max=128"`
	DoseMG  float64   `json:"dose_mg" binding:"min=0"`
	TakenAt time.Time `json:"taken_at" binding:"required"`
	Note    string    `json:"note"`
}

type UpdateMedicationRequest struct {
	Name    string    `json:"name" binding:"required,max=128"`
	DoseMG  float64   `json:"dose_mg" binding:"min=0"`
	TakenAt time.Time `json:"taken_at" binding:"required"`
	Note    string    `json:"note"`
}

type CreateSeizureRequest struct {
	OccurredAt      time.Time `json:"occurred_at" binding:"required"`
	DurationSeconds int       `json:"duration_seconds" binding:"min=0"`
	Kind            string    `json:"kind" binding:"max=64"`
	Note            string    `json:"note"`
}

type UpdateSeizureRequest = CreateSeizureRequest

type CreateCycleRequest struct {
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	Flow     string `json:"flow" binding:"max=32"`
	Symptoms string `json:"symptoms" binding:"max=256"`
	Note     string `json:"note"`
}

type UpdateCycleRequest struct {
	Flow     string `json:"flow" binding:"max=32"`
	Symptoms string `json:"symptoms" binding:"max=256"`
	Note     string `json:"note"`
}

type NoteHTMLDTO struct {
	ID   uint   `json:"id"`
	Kind string `json:"kind"`
	HTML string `json:"html"`
}

const dateLayout = "2006-01-02"

func ToMoodDTO(e *journal.MoodEntry) *MoodEntryDTO {
	if e == nil {
		return nil
	}
	return &MoodEntryDTO{
		ID:        e.ID,
		UserID:    e.UserID,
		Date:      e.Date.Format(dateLayout),
		Rating:    e.Rating,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToMedicationDTO(e *journal.MedicationEntry) *MedicationEntryDTO {
	if e == nil {
		return nil
	}
	return &MedicationEntryDTO{
		ID:        e.ID,
		UserID:    e.UserID,
		Name:      e.Name,
		DoseMG:    e.DoseMG,
		TakenAt:   e.TakenAt,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToSeizureDTO(e *journal.SeizureEntry) *SeizureEntryDTO {
	if e == nil {
		return nil
	}
	return &SeizureEntryDTO{
		ID:              e.ID,
		UserID:          e.UserID,
		OccurredAt:      e.OccurredAt,
		DurationSeconds: e.DurationSeconds,
		Kind:            e.Kind,
		Note:            e.Note,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToCycleDTO(e *journal.CycleEntry) *CycleEntryDTO {
	if e == nil {
		return nil
	}
	return &CycleEntryDTO{
		ID:        e.ID,
		UserID:    e.UserID,
		Date:      e.Date.Format(dateLayout),
		Flow:      e.Flow,
		Symptoms:  e.Symptoms,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToMoodDTOs(entries []*journal.MoodEntry) []*MoodEntryDTO {
	return mapper.MapSlicePtr(entries, ToMoodDTO)
}

func ToMedicationDTOs(entries []*journal.MedicationEntry) []*MedicationEntryDTO {
	return mapper.MapSlicePtr(entries, ToMedicationDTO)
}

func ToSeizureDTOs(entries []*journal.SeizureEntry) []*SeizureEntryDTO {
	return mapper.MapSlicePtr(entries, ToSeizureDTO)
}

func ToCycleDTOs(entries []*journal.CycleEntry) []*CycleEntryDTO {
	return mapper.MapSlicePtr(entries, ToCycleDTO)
}
