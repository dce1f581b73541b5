package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	"vita/internal/domain/tracker"
	"vita/internal/infrastructure/fitbit"
	apperrors "vita/internal/shared/errors"
	"vita/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func pendingFor(userID uint, name string) *tracker.PendingConnection {
	return &tracker.PendingConnection{UserID: userID, UserName: name}
}

type fakePendingStore struct {
	entries map[string]*tracker.PendingConnection
	setErr  error
}

func newFakePendingStore() *fakePendingStore {
	return &fakePendingStore{entries: make(map[string]*tracker.PendingConnection)}
}

func (s *fakePendingStore) Set(_ context.Context, state string, pending *tracker.PendingConnection, _ time.Duration) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.entries[state] = pending
	return nil
}

func (s *fakePendingStore) Get(_ context.Context, state string) (*tracker.PendingConnection, error) {
	pending, ok := s.entries[state]
	if !ok {
		return nil, apperrors.ErrSessionExpired
	}
	delete(s.entries, state)
	return pending, nil
}

type fakeOAuthClient struct {
	exchangeErr  error
	accountID    string
	accountErr   error
	accessToken  string
	refreshToken string
	expiresAt    time.Time
}

func (c *fakeOAuthClient) GetAuthURL(state string) string {
	return "https://provider.example/authorize?state=" + state
}

func (c *fakeOAuthClient) ExchangeCode(_ context.Context, _ string) (string, string, time.Time, error) {
	if c.exchangeErr != nil {
		return "", "", time.Time{}, c.exchangeErr
	}
	return c.accessToken, c.refreshToken, c.expiresAt, nil
}

func (c *fakeOAuthClient) GetAccountID(_ context.Context, _ string) (string, error) {
	if c.accountErr != nil {
		return "", c.accountErr
	}
	return c.accountID, nil
}

type fakeIntegrationRepo struct {
	byUser    map[uint]*tracker.Integration
	upsertErr error
	updates   int
}

func newFakeIntegrationRepo() *fakeIntegrationRepo {
	return &fakeIntegrationRepo{byUser: make(map[uint]*tracker.Integration)}
}

func (r *fakeIntegrationRepo) Upsert(_ context.Context, integration *tracker.Integration) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.byUser[integration.UserID] = integration
	return nil
}

func (r *fakeIntegrationRepo) GetByUserID(_ context.Context, userID uint) (*tracker.Integration, error) {
	return r.byUser[userID], nil
}

func (r *fakeIntegrationRepo) GetByProviderUserID(_ context.Context, _, providerUserID string) (*tracker.Integration, error) {
	for _, integration := range r.byUser {
		if integration.ProviderUserID == providerUserID {
			return integration, nil
		}
	}
	return nil, nil
}

func (r *fakeIntegrationRepo) ListActive(_ context.Context) ([]*tracker.Integration, error) {
	var active []*tracker.Integration
	for _, integration := range r.byUser {
		if integration.Active {
			active = append(active, integration)
		}
	}
	return active, nil
}

func (r *fakeIntegrationRepo) Update(_ context.Context, integration *tracker.Integration) error {
	r.updates++
	r.byUser[integration.UserID] = integration
	return nil
}

func (r *fakeIntegrationRepo) Delete(_ context.Context, userID uint) error {
	delete(r.byUser, userID)
	return nil
}

type fakeActivityRepo struct {
	records   []*tracker.ActivityRecord
	upsertErr error
}

func (r *fakeActivityRepo) Upsert(_ context.Context, record *tracker.ActivityRecord) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.records = append(r.records, record)
	return nil
}

func (r *fakeActivityRepo) GetByUserAndDate(_ context.Context, _ uint, _ time.Time) (*tracker.ActivityRecord, error) {
	return nil, nil
}

func (r *fakeActivityRepo) ListByUserAndRange(_ context.Context, _ uint, _, _ time.Time) ([]*tracker.ActivityRecord, error) {
	return r.records, nil
}

type fakeWeightRepo struct {
	records []*tracker.WeightRecord
}

func (r *fakeWeightRepo) Upsert(_ context.Context, record *tracker.WeightRecord) error {
	r.records = append(r.records, record)
	return nil
}

func (r *fakeWeightRepo) GetByUserAndDate(_ context.Context, _ uint, _ time.Time) (*tracker.WeightRecord, error) {
	return nil, nil
}

func (r *fakeWeightRepo) ListByUserAndRange(_ context.Context, _ uint, _, _ time.Time) ([]*tracker.WeightRecord, error) {
	return r.records, nil
}

type fakeFoodRepo struct {
	records []*tracker.FoodRecord
}

func (r *fakeFoodRepo) Upsert(_ context.Context, record *tracker.FoodRecord) error {
	r.records = append(r.records, record)
	return nil
}

func (r *fakeFoodRepo) GetByUserAndDate(_ context.Context, _ uint, _ time.Time) (*tracker.FoodRecord, error) {
	return nil, nil
}

func (r *fakeFoodRepo) ListByUserAndRange(_ context.Context, _ uint, _, _ time.Time) ([]*tracker.FoodRecord, error) {
	return r.records, nil
}

type fakeSleepRepo struct {
	records []*tracker.SleepRecord
}

func (r *fakeSleepRepo) Upsert(_ context.Context, record *tracker.SleepRecord) error {
	r.records = append(r.records, record)
	return nil
}

func (r *fakeSleepRepo) GetByUserAndDate(_ context.Context, _ uint, _ time.Time) (*tracker.SleepRecord, error) {
	return nil, nil
}

func (r *fakeSleepRepo) ListByUserAndRange(_ context.Context, _ uint, _, _ time.Time) ([]*tracker.SleepRecord, error) {
	return r.records, nil
}

type fakeTokenProvider struct {
	token string
	err   error
}

func (p *fakeTokenProvider) Token(_ context.Context) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.token, nil
}

// fakeGateway returns the same canned DayResult for every date and
// records how many days were fetched.
type fakeGateway struct {
	result  fitbit.DayResult
	fetched int
	block   chan struct{}
}

func (g *fakeGateway) FetchDay(_ context.Context, _ string, _ time.Time) *fitbit.DayResult {
	g.fetched++
	if g.block != nil {
		<-g.block
	}
	result := g.result
	return &result
}

type fakeNotifier struct {
	sent []string
	err  error
}

func (n *fakeNotifier) SendReconnectEmail(to, _, _ string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, to)
	return nil
}
