package journal

import (
	"context"
	"fmt"
	"time"

	"vita/internal/application/journal/dto"
	domainJournal "vita/internal/domain/journal"
	"vita/internal/shared/errors"
	"vita/internal/shared/logger"
	"vita/internal/shared/services/markdown"
)

// Entry kinds addressable through the note-rendering endpoint.
const (
	KindMood       = "mood"
	KindMedication = "medication"
	KindSeizure    = "seizure"
	KindCycle      = "cycle"
)

const dateLayout = "2006-01-02"

// Service covers the four journal entry kinds. All reads and writes
// are scoped to one user; an entry owned by someone else reads as not
// found rather than forbidden.
type Service struct {
	moods       domainJournal.MoodRepository
	medications domainJournal.MedicationRepository
	seizures    domainJournal.SeizureRepository
	cycles      domainJournal.CycleRepository
	markdown    markdown.Service
	logger      logger.Interface
}

func NewService(
	moods domainJournal.MoodRepository,
	medications domainJournal.MedicationRepository,
	seizures domainJournal.SeizureRepository,
	cycles domainJournal.CycleRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *Service {
	return &Service{
		moods:       moods,
		medications: medications,
		seizures:    seizures,
		cycles:      cycles,
		markdown:    markdownSvc,
		logger:      logger,
	}
}

func (s *Service) CreateMood(ctx context.Context, userID uint, req dto.CreateMoodRequest) (*dto.MoodEntryDTO, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	entry, err := domainJournal.NewMoodEntry(userID, date, req.Rating, req.Note)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.moods.Create(ctx, entry); err != nil {
		s.logger.Errorw("failed to create mood entry", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}
	return dto.ToMoodDTO(entry), nil
}

func (s *Service) GetMood(ctx context.Context, userID, id uint) (*dto.MoodEntryDTO, error) {
	entry, err := s.getMood(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return dto.ToMoodDTO(entry), nil
}

func (s *Service) ListMoods(ctx context.Context, userID uint, from, to time.Time) ([]*dto.MoodEntryDTO, error) {
	entries, err := s.moods.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}
	return dto.ToMoodDTOs(entries), nil
}

func (s *Service) UpdateMood(ctx context.Context, userID, id uint, req dto.UpdateMoodRequest) (*dto.MoodEntryDTO, error) {
	entry, err := s.getMood(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := entry.Update(req.Rating, req.Note); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.moods.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update mood entry: %w", err)
	}
	return dto.ToMoodDTO(entry), nil
}

func (s *Service) DeleteMood(ctx context.Context, userID, id uint) error {
	if _, err := s.getMood(ctx, userID, id); err != nil {
		return err
	}
	return s.moods.Delete(ctx, id)
}

func (s *Service) CreateMedication(ctx context.Context, userID uint, req dto.CreateMedicationRequest) (*dto.MedicationEntryDTO, error) {
	entry, err := domainJournal.NewMedicationEntry(userID, req.Name, req.DoseMG, req.TakenAt, req.Note)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.medications.Create(ctx, entry); err != nil {
		s.logger.Errorw("failed to create medication entry", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to create medication entry: %w", err)
	}
	return dto.ToMedicationDTO(entry), nil
}

func (s *Service) GetMedication(ctx context.Context, userID, id uint) (*dto.MedicationEntryDTO, error) {
	entry, err := s.getMedication(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return dto.ToMedicationDTO(entry), nil
}

func (s *Service) ListMedications(ctx context.Context, userID uint, from, to time.Time) ([]*dto.MedicationEntryDTO, error) {
	entries, err := s.medications.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list medication entries: %w", err)
	}
	return dto.ToMedicationDTOs(entries), nil
}

func (s *Service) UpdateMedication(ctx context.Context, userID, id uint, req dto.UpdateMedicationRequest) (*dto.MedicationEntryDTO, error) {
	entry, err := s.getMedication(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := entry.Update(req.Name, req.DoseMG, req.TakenAt, req.Note); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.medications.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update medication entry: %w", err)
	}
	return dto.ToMedicationDTO(entry), nil
}

func (s *Service) DeleteMedication(ctx context.Context, userID, id uint) error {
	if _, err := s.getMedication(ctx, userID, id); err != nil {
		return err
	}
	return s.medications.Delete(ctx, id)
}

func (s *Service) CreateSeizure(ctx context.Context, userID uint, req dto.CreateSeizureRequest) (*dto.SeizureEntryDTO, error) {
	entry, err := domainJournal.NewSeizureEntry(userID, req.OccurredAt, req.DurationSeconds, req.Kind, req.Note)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.seizures.Create(ctx, entry); err != nil {
		s.logger.Errorw("failed to create seizure entry", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to create seizure entry: %w", err)
	}
	return dto.ToSeizureDTO(entry), nil
}

func (s *Service) GetSeizure(ctx context.Context, userID, id uint) (*dto.SeizureEntryDTO, error) {
	entry, err := s.getSeizure(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return dto.ToSeizureDTO(entry), nil
}

func (s *Service) ListSeizures(ctx context.Context, userID uint, from, to time.Time) ([]*dto.SeizureEntryDTO, error) {
	entries, err := s.seizures.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list seizure entries: %w", err)
	}
	return dto.ToSeizureDTOs(entries), nil
}

func (s *Service) UpdateSeizure(ctx context.Context, userID, id uint, req dto.UpdateSeizureRequest) (*dto.SeizureEntryDTO, error) {
	entry, err := s.getSeizure(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := entry.Update(req.OccurredAt, req.DurationSeconds, req.Kind, req.Note); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.seizures.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update seizure entry: %w", err)
	}
	return dto.ToSeizureDTO(entry), nil
}

func (s *Service) DeleteSeizure(ctx context.Context, userID, id uint) error {
	if _, err := s.getSeizure(ctx, userID, id); err != nil {
		return err
	}
	return s.seizures.Delete(ctx, id)
}

func (s *Service) CreateCycle(ctx context.Context, userID uint, req dto.CreateCycleRequest) (*dto.CycleEntryDTO, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	entry, err := domainJournal.NewCycleEntry(userID, date, req.Flow, req.Symptoms, req.Note)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.cycles.Create(ctx, entry); err != nil {
		s.logger.Errorw("failed to create cycle entry", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to create cycle entry: %w", err)
	}
	return dto.ToCycleDTO(entry), nil
}

func (s *Service) GetCycle(ctx context.Context, userID, id uint) (*dto.CycleEntryDTO, error) {
	entry, err := s.getCycle(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return dto.ToCycleDTO(entry), nil
}

func (s *Service) ListCycles(ctx context.Context, userID uint, from, to time.Time) ([]*dto.CycleEntryDTO, error) {
	entries, err := s.cycles.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list cycle entries: %w", err)
	}
	return dto.ToCycleDTOs(entries), nil
}

func (s *Service) UpdateCycle(ctx context.Context, userID, id uint, req dto.UpdateCycleRequest) (*dto.CycleEntryDTO, error) {
	entry, err := s.getCycle(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	entry.Update(req.Flow, req.Symptoms, req.Note)
	if err := s.cycles.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update cycle entry: %w", err)
	}
	return dto.ToCycleDTO(entry), nil
}

func (s *Service) DeleteCycle(ctx context.Context, userID, id uint) error {
	if _, err := s.getCycle(ctx, userID, id); err != nil {
		return err
	}
	return s.cycles.Delete(ctx, id)
}

// NoteHTML renders one entry's markdown note as sanitized HTML.
func (s *Service) NoteHTML(ctx context.Context, userID uint, kind string, id uint) (*dto.NoteHTMLDTO, error) {
	var note string
	switch kind {
	case KindMood:
		entry, err := s.getMood(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		note = entry.Note
	case KindMedication:
		entry, err := s.getMedication(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		note = entry.Note
	case KindSeizure:
		entry, err := s.getSeizure(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		note = entry.Note
	case KindCycle:
		entry, err := s.getCycle(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		note = entry.Note
	default:
		return nil, errors.NewBadRequestError(fmt.Sprintf("unknown entry kind %q", kind))
	}

	rendered, err := s.markdown.ToHTMLSanitized(note)
	if err != nil {
		return nil, fmt.Errorf("failed to render note: %w", err)
	}
	return &dto.NoteHTMLDTO{ID: id, Kind: kind, HTML: rendered}, nil
}

func (s *Service) getMood(ctx context.Context, userID, id uint) (*domainJournal.MoodEntry, error) {
	entry, err := s.moods.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood entry: %w", err)
	}
	if entry == nil || entry.UserID != userID {
		return nil, errors.NewNotFoundError(fmt.Sprintf("mood entry %d not found", id))
	}
	return entry, nil
}

func (s *Service) getMedication(ctx context.Context, userID, id uint) (*domainJournal.MedicationEntry, error) {
	entry, err := s.medications.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load medication entry: %w", err)
	}
	if entry == nil || entry.UserID != userID {
		return nil, errors.NewNotFoundError(fmt.Sprintf("medication entry %d not found", id))
	}
	return entry, nil
}

func (s *Service) getSeizure(ctx context.Context, userID, id uint) (*domainJournal.SeizureEntry, error) {
	entry, err := s.seizures.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load seizure entry: %w", err)
	}
	if entry == nil || entry.UserID != userID {
		return nil, errors.NewNotFoundError(fmt.Sprintf("seizure entry %d not found", id))
	}
	return entry, nil
}

func (s *Service) getCycle(ctx context.Context, userID, id uint) (*domainJournal.CycleEntry, error) {
	entry, err := s.cycles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load cycle entry: %w", err)
	}
	if entry == nil || entry.UserID != userID {
		return nil, errors.NewNotFoundError(fmt.Sprintf("cycle entry %d not found", id))
	}
	return entry, nil
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewValidationError("invalid date", err.Error())
	}
	return date, nil
}
