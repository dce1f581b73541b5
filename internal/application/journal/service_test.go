package journal

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vita/internal/application/journal/dto"
	domainJournal "vita/internal/domain/journal"
	apperrors "vita/internal/shared/errors"
	"vita/internal/shared/logger"
	"vita/internal/shared/services/markdown"
)

type fakeMoodRepo struct {
	entries map[uint]*domainJournal.MoodEntry
	nextID  uint
}

func newFakeMoodRepo() *fakeMoodRepo {
	return &fakeMoodRepo{entries: make(map[uint]*domainJournal.MoodEntry), nextID: 1}
}

func (r *fakeMoodRepo) Create(_ context.Context, entry *domainJournal.MoodEntry) error {
	entry.ID = r.nextID
	r.nextID++
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeMoodRepo) GetByID(_ context.Context, id uint) (*domainJournal.MoodEntry, error) {
	return r.entries[id], nil
}

func (r *fakeMoodRepo) ListByUserAndRange(_ context.Context, userID uint, from, to time.Time) ([]*domainJournal.MoodEntry, error) {
	var out []*domainJournal.MoodEntry
	for _, e := range r.entries {
		if e.UserID == userID && !e.Date.Before(from) && !e.Date.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeMoodRepo) Update(_ context.Context, entry *domainJournal.MoodEntry) error {
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeMoodRepo) Delete(_ context.Context, id uint) error {
	delete(r.entries, id)
	return nil
}

type fakeMedicationRepo struct {
	entries map[uint]*domainJournal.MedicationEntry
	nextID  uint
}

func newFakeMedicationRepo() *fakeMedicationRepo {
	return &fakeMedicationRepo{entries: make(map[uint]*domainJournal.MedicationEntry), nextID: 1}
}

func (r *fakeMedicationRepo) Create(_ context.Context, entry *domainJournal.MedicationEntry) error {
	entry.ID = r.nextID
	r.nextID++
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeMedicationRepo) GetByID(_ context.Context, id uint) (*domainJournal.MedicationEntry, error) {
	return r.entries[id], nil
}

func (r *fakeMedicationRepo) ListByUserAndRange(_ context.Context, userID uint, from, to time.Time) ([]*domainJournal.MedicationEntry, error) {
	var out []*domainJournal.MedicationEntry
	for _, e := range r.entries {
		if e.UserID == userID && !e.TakenAt.Before(from) && !e.TakenAt.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeMedicationRepo) Update(_ context.Context, entry *domainJournal.MedicationEntry) error {
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeMedicationRepo) Delete(_ context.Context, id uint) error {
	delete(r.entries, id)
	return nil
}

type fakeSeizureRepo struct {
	entries map[uint]*domainJournal.SeizureEntry
	nextID  uint
}

func newFakeSeizureRepo() *fakeSeizureRepo {
	return &fakeSeizureRepo{entries: make(map[uint]*domainJournal.SeizureEntry), nextID: 1}
}

func (r *fakeSeizureRepo) Create(_ context.Context, entry *domainJournal.SeizureEntry) error {
	entry.ID = r.nextID
	r.nextID++
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeSeizureRepo) GetByID(_ context.Context, id uint) (*domainJournal.SeizureEntry, error) {
	return r.entries[id], nil
}

func (r *fakeSeizureRepo) ListByUserAndRange(_ context.Context, userID uint, from, to time.Time) ([]*domainJournal.SeizureEntry, error) {
	var out []*domainJournal.SeizureEntry
	for _, e := range r.entries {
		if e.UserID == userID && !e.OccurredAt.Before(from) && !e.OccurredAt.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeSeizureRepo) Update(_ context.Context, entry *domainJournal.SeizureEntry) error {
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeSeizureRepo) Delete(_ context.Context, id uint) error {
	delete(r.entries, id)
	return nil
}

type fakeCycleRepo struct {
	entries map[uint]*domainJournal.CycleEntry
	nextID  uint
}

func newFakeCycleRepo() *fakeCycleRepo {
	return &fakeCycleRepo{entries: make(map[uint]*domainJournal.CycleEntry), nextID: 1}
}

func (r *fakeCycleRepo) Create(_ context.Context, entry *domainJournal.CycleEntry) error {
	entry.ID = r.nextID
	r.nextID++
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeCycleRepo) GetByID(_ context.Context, id uint) (*domainJournal.CycleEntry, error) {
	return r.entries[id], nil
}

func (r *fakeCycleRepo) ListByUserAndRange(_ context.Context, userID uint, from, to time.Time) ([]*domainJournal.CycleEntry, error) {
	var out []*domainJournal.CycleEntry
	for _, e := range r.entries {
		if e.UserID == userID && !e.Date.Before(from) && !e.Date.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeCycleRepo) Update(_ context.Context, entry *domainJournal.CycleEntry) error {
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeCycleRepo) Delete(_ context.Context, id uint) error {
	delete(r.entries, id)
	return nil
}

func newTestService() *Service {
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewService(
		newFakeMoodRepo(),
		newFakeMedicationRepo(),
		newFakeSeizureRepo(),
		newFakeCycleRepo(),
		markdown.NewService(),
		log,
	)
}

func TestCreateAndGetMood(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateMood(ctx, 1, dto.CreateMoodRequest{
		Date:   "2026-03-14",
		Rating: 7,
		Note:   "slept well",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetMood(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-14", got.Date)
	assert.Equal(t, 7, got.Rating)
	assert.Equal(t, "slept well", got.Note)
}

func TestCreateMoodRejectsBadDate(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateMood(context.Background(), 1, dto.CreateMoodRequest{
		Date:   "14/03/2026",
		Rating: 7,
	})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestGetMoodScopedToOwner(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateMood(ctx, 1, dto.CreateMoodRequest{Date: "2026-03-14", Rating: 5})
	require.NoError(t, err)

	// Another household member must not see it.
	_, err = svc.GetMood(ctx, 2, created.ID)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestUpdateMood(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateMood(ctx, 1, dto.CreateMoodRequest{Date: "2026-03-14", Rating: 5})
	require.NoError(t, err)

	updated, err := svc.UpdateMood(ctx, 1, created.ID, dto.UpdateMoodRequest{Rating: 9, Note: "better"})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Rating)
	assert.Equal(t, "better", updated.Note)
}

func TestDeleteMood(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateMood(ctx, 1, dto.CreateMoodRequest{Date: "2026-03-14", Rating: 5})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMood(ctx, 1, created.ID))

	_, err = svc.GetMood(ctx, 1, created.ID)
	require.Error(t, err)
}

func TestListMoodsByRange(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, date := range []string{"2026-03-01", "2026-03-10", "2026-03-20"} {
		_, err := svc.CreateMood(ctx, 1, dto.CreateMoodRequest{Date: date, Rating: 5})
		require.NoError(t, err)
	}

	from := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	entries, err := svc.ListMoods(ctx, 1, from, to)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2026-03-10", entries[0].Date)
}

func TestMedicationRoundtrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	takenAt := time.Date(2026, 3, 14, 8, 30, 0, 0, time.UTC)

	created, err := svc.CreateMedication(ctx, 1, dto.CreateMedicationRequest{
		Name:    "levetiracetam",
		DoseMG:  500,
		TakenAt: takenAt,
	})
	require.NoError(t, err)

	got, err := svc.GetMedication(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "levetiracetam", got.Name)
	assert.Equal(t, 500.0, got.DoseMG)
}

func TestSeizureRoundtrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	occurredAt := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)

	created, err := svc.CreateSeizure(ctx, 1, dto.CreateSeizureRequest{
		OccurredAt:      occurredAt,
		DurationSeconds: 90,
		Kind:            "focal",
	})
	require.NoError(t, err)

	got, err := svc.GetSeizure(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, got.DurationSeconds)
	assert.Equal(t, "focal", got.Kind)
}

func TestCycleRoundtrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateCycle(ctx, 1, dto.CreateCycleRequest{
		Date:     "2026-03-14",
		Flow:     "medium",
		Symptoms: "cramps",
	})
	require.NoError(t, err)

	got, err := svc.GetCycle(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "medium", got.Flow)
	assert.Equal(t, "cramps", got.Symptoms)
}

func TestNoteHTMLRendersMarkdown(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateMood(ctx, 1, dto.CreateMoodRequest{
		Date:   "2026-03-14",
		Rating: 7,
		Note:   "felt **great** today",
	})
	require.NoError(t, err)

	rendered, err := svc.NoteHTML(ctx, 1, KindMood, created.ID)
	require.NoError(t, err)
	assert.Equal(t, KindMood, rendered.Kind)
	assert.Contains(t, rendered.HTML, "<strong>great</strong>")
}

func TestNoteHTMLStripsScripts(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateMood(ctx, 1, dto.CreateMoodRequest{
		Date:   "2026-03-14",
		Rating: 7,
		Note:   "hello <script>alert(1)</script> world",
	})
	require.NoError(t, err)

	rendered, err := svc.NoteHTML(ctx, 1, KindMood, created.ID)
	require.NoError(t, err)
	assert.NotContains(t, rendered.HTML, "<script>")
	assert.Contains(t, rendered.HTML, "hello")
}

func TestNoteHTMLUnknownKind(t *testing.T) {
	svc := newTestService()

	_, err := svc.NoteHTML(context.Background(), 1, "dreams", 1)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeBadRequest, appErr.Type)
}
