package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	profileDTO "vita/internal/application/profile/dto"
	trackerUsecases "vita/internal/application/tracker/usecases"
	"vita/internal/domain/tracker"
	"vita/internal/shared/config"
	"vita/internal/shared/constants"
	apperrors "vita/internal/shared/errors"
	"vita/internal/shared/logger"
)

type mockBeginUC struct {
	result *trackerUsecases.BeginConnectionResult
	err    error
}

func (m *mockBeginUC) Execute(_ context.Context, _ trackerUsecases.BeginConnectionCommand) (*trackerUsecases.BeginConnectionResult, error) {
	return m.result, m.err
}

type mockCompleteUC struct {
	result  *trackerUsecases.CompleteConnectionResult
	err     error
	lastCmd trackerUsecases.CompleteConnectionCommand
}

func (m *mockCompleteUC) Execute(_ context.Context, cmd trackerUsecases.CompleteConnectionCommand) (*trackerUsecases.CompleteConnectionResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockSyncUC struct {
	result *tracker.SyncOutcome
	err    error
}

func (m *mockSyncUC) Execute(_ context.Context, _ trackerUsecases.SyncCommand) (*tracker.SyncOutcome, error) {
	return m.result, m.err
}

type mockStatusUC struct {
	result *trackerUsecases.SyncStatusResult
	err    error
}

func (m *mockStatusUC) Execute(_ context.Context, _ uint) (*trackerUsecases.SyncStatusResult, error) {
	return m.result, m.err
}

type mockDisconnectUC struct{ err error }

func (m *mockDisconnectUC) Execute(_ context.Context, _ trackerUsecases.DisconnectCommand) error {
	return m.err
}

type mockRecordsUC struct {
	result *trackerUsecases.RecordsResult
	err    error
}

func (m *mockRecordsUC) Execute(_ context.Context, _ uint, _, _ time.Time) (*trackerUsecases.RecordsResult, error) {
	return m.result, m.err
}

type mockProfileReader struct {
	result *profileDTO.ProfileDTO
	err    error
}

func (m *mockProfileReader) Get(_ context.Context, _ uint) (*profileDTO.ProfileDTO, error) {
	return m.result, m.err
}

type mockTokenIssuer struct {
	token string
	err   error
}

func (m *mockTokenIssuer) Generate(_ uint, _ string) (string, time.Time, error) {
	if m.err != nil {
		return "", time.Time{}, m.err
	}
	return m.token, time.Now().Add(24 * time.Hour), nil
}

type trackerHandlerMocks struct {
	begin      *mockBeginUC
	complete   *mockCompleteUC
	sync       *mockSyncUC
	status     *mockStatusUC
	disconnect *mockDisconnectUC
	records    *mockRecordsUC
	profiles   *mockProfileReader
	tokens     *mockTokenIssuer
}

func newTrackerHandler(mocks *trackerHandlerMocks) *TrackerHandler {
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	cookieCfg := &config.CookieConfig{Path: "/", SameSite: "lax"}
	return NewTrackerHandler(
		mocks.begin, mocks.complete, mocks.sync, mocks.status,
		mocks.disconnect, mocks.records, mocks.profiles, mocks.tokens,
		cookieCfg, log,
	)
}

func defaultMocks() *trackerHandlerMocks {
	return &trackerHandlerMocks{
		begin:      &mockBeginUC{},
		complete:   &mockCompleteUC{},
		sync:       &mockSyncUC{},
		status:     &mockStatusUC{},
		disconnect: &mockDisconnectUC{},
		records:    &mockRecordsUC{},
		profiles:   &mockProfileReader{},
		tokens:     &mockTokenIssuer{token: "signed"},
	}
}

// withUser injects the active profile the way the cookie middleware
// does.
func withUser(userID uint, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, userID)
		c.Set("user_name", name)
		c.Next()
	}
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTrackerConnectRedirects(t *testing.T) {
	mocks := defaultMocks()
	mocks.begin.result = &trackerUsecases.BeginConnectionResult{
		AuthURL: "https://www.fitbit.com/oauth2/authorize?state=abc",
		State:   "abc",
	}
	handler := newTrackerHandler(mocks)

	router := gin.New()
	router.GET("/tracker/connect", withUser(1, "erin"), handler.Connect)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tracker/connect", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, mocks.begin.result.AuthURL, w.Header().Get("Location"))
}

func TestTrackerConnectRequiresProfile(t *testing.T) {
	handler := newTrackerHandler(defaultMocks())

	router := gin.New()
	router.GET("/tracker/connect", handler.Connect)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tracker/connect", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTrackerSync(t *testing.T) {
	mocks := defaultMocks()
	mocks.sync.result = &tracker.SyncOutcome{
		Activities: 7, Weights: 3, Foods: 7, Sleep: 6,
		Status: tracker.SyncCompleted,
	}
	handler := newTrackerHandler(mocks)

	router := gin.New()
	router.POST("/tracker/sync", withUser(1, "erin"), handler.Sync)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tracker/sync", strings.NewReader(`{"days":7}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data tracker.SyncOutcome `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 7, body.Data.Activities)
	assert.Equal(t, tracker.SyncCompleted, body.Data.Status)
}

func TestTrackerSyncConflictWhenRunning(t *testing.T) {
	mocks := defaultMocks()
	mocks.sync.err = apperrors.ErrSyncInProgress
	handler := newTrackerHandler(mocks)

	router := gin.New()
	router.POST("/tracker/sync", withUser(1, "erin"), handler.Sync)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tracker/sync", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTrackerSyncTransportFailureStillReturnsOutcome(t *testing.T) {
	mocks := defaultMocks()
	outcome := &tracker.SyncOutcome{Status: tracker.SyncFailed}
	mocks.sync.result = outcome
	mocks.sync.err = apperrors.ErrTransportUnreachable
	handler := newTrackerHandler(mocks)

	router := gin.New()
	router.POST("/tracker/sync", withUser(1, "erin"), handler.Sync)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tracker/sync", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data tracker.SyncOutcome `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, tracker.SyncFailed, body.Data.Status)
}

func TestTrackerCallbackSuccessReissuesCookie(t *testing.T) {
	mocks := defaultMocks()
	mocks.complete.result = &trackerUsecases.CompleteConnectionResult{
		UserID:         2,
		UserName:       "sam",
		ReactivateUser: true,
	}
	handler := newTrackerHandler(mocks)

	router := gin.New()
	router.GET("/tracker/callback", withUser(9, "erin"), handler.Callback)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tracker/callback?state=abc&code=xyz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Tracker Connected")
	assert.Equal(t, uint(9), mocks.complete.lastCmd.ActiveUserID)

	// The initiator becomes the active profile again.
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "vita_profile", cookies[0].Name)
	assert.Equal(t, "signed", cookies[0].Value)
}

func TestTrackerCallbackExpiredState(t *testing.T) {
	mocks := defaultMocks()
	mocks.complete.err = apperrors.ErrSessionExpired
	handler := newTrackerHandler(mocks)

	router := gin.New()
	router.GET("/tracker/callback", handler.Callback)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tracker/callback?state=gone&code=xyz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Connection Failed")
	assert.Contains(t, w.Body.String(), "expired")
}

func TestTrackerCallbackProviderDenied(t *testing.T) {
	mocks := defaultMocks()
	mocks.complete.err = apperrors.ErrAuthorizationDenied
	handler := newTrackerHandler(mocks)

	router := gin.New()
	router.GET("/tracker/callback", handler.Callback)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tracker/callback?state=abc&error=access_denied", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "declined")
}

func TestTrackerStatus(t *testing.T) {
	mocks := defaultMocks()
	last := time.Now().UTC().Add(-10 * time.Minute)
	mocks.status.result = &trackerUsecases.SyncStatusResult{
		Connected:    true,
		Provider:     "fitbit",
		LastSyncedAt: &last,
	}
	handler := newTrackerHandler(mocks)

	router := gin.New()
	router.GET("/tracker/status", withUser(1, "erin"), handler.Status)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tracker/status", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data trackerUsecases.SyncStatusResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Data.Connected)
	assert.Equal(t, "fitbit", body.Data.Provider)
}

func TestTrackerDisconnect(t *testing.T) {
	handler := newTrackerHandler(defaultMocks())

	router := gin.New()
	router.DELETE("/tracker", withUser(1, "erin"), handler.Disconnect)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/tracker", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}
