package fitbit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"vita/internal/domain/tracker"
	"vita/internal/shared/config"
)

// TokenSource returns a valid access token for one integration.
// It is safe for concurrent use by multiple goroutines.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	ForceRefresh(ctx context.Context) (string, error)
}

// IntegrationTokenSource reads tokens from the integration repository
// and refreshes them against Fitbit when they are about to expire.
type IntegrationTokenSource struct {
	repo   tracker.IntegrationRepository
	cfg    *config.FitbitConfig
	userID uint
	http   *http.Client
	mu     sync.Mutex
}

func NewIntegrationTokenSource(repo tracker.IntegrationRepository, cfg *config.FitbitConfig, userID uint) *IntegrationTokenSource {
	return &IntegrationTokenSource{
		repo:   repo,
		cfg:    cfg,
		userID: userID,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Token returns an access token, refreshing it if necessary.
// Refresh happens proactively when the token expires within the next
// minute, so a long fetch window does not start on a dying token.
func (s *IntegrationTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	integration, err := s.repo.GetByUserID(ctx, s.userID)
	if err != nil {
		return "", fmt.Errorf("failed to load integration: %w", err)
	}
	if integration == nil || !integration.Active {
		return "", fmt.Errorf("integration not linked")
	}
	if integration.AccessToken == "" {
		return "", fmt.Errorf("missing access token")
	}
	if integration.RefreshToken == "" {
		return "", fmt.Errorf("missing refresh token")
	}

	if !integration.TokenExpiresAt.IsZero() && time.Now().Add(1*time.Minute).After(integration.TokenExpiresAt) {
		return s.refresh(ctx, integration)
	}

	return integration.AccessToken, nil
}

// ForceRefresh refreshes the token regardless of expiry.
func (s *IntegrationTokenSource) ForceRefresh(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	integration, err := s.repo.GetByUserID(ctx, s.userID)
	if err != nil {
		return "", fmt.Errorf("failed to load integration: %w", err)
	}
	if integration == nil || !integration.Active {
		return "", fmt.Errorf("integration not linked")
	}
	if integration.RefreshToken == "" {
		return "", fmt.Errorf("missing refresh token")
	}

	return s.refresh(ctx, integration)
}

// refresh performs the HTTP exchange for a new token set and persists it.
func (s *IntegrationTokenSource) refresh(ctx context.Context, integration *tracker.Integration) (string, error) {
	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("refresh_token", integration.RefreshToken)

	req, err := http.NewRequestWithContext(ctx, "POST", tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	// Fitbit wants client credentials in a Basic auth header
	req.SetBasicAuth(s.cfg.ClientID, s.cfg.ClientSecret)

	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("refresh request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("refresh failed with status: %d", resp.StatusCode)
	}

	var result struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode refresh response: %w", err)
	}

	newExpiry := time.Now().Add(time.Duration(result.ExpiresIn) * time.Second)

	// ApplyTokens keeps the old refresh token when the provider omits
	// a new one, so a refresh never wipes the stored credential.
	integration.ApplyTokens(result.AccessToken, result.RefreshToken, newExpiry)

	if err := s.repo.Update(ctx, integration); err != nil {
		return "", fmt.Errorf("failed to persist new tokens: %w", err)
	}

	return result.AccessToken, nil
}
