package fitbit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"vita/internal/shared/config"
)

const (
	authURL  = "https://www.fitbit.com/oauth2/authorize"
	tokenURL = "https://api.fitbit.com/oauth2/token"
	apiBase  = "https://api.fitbit.com"
)

// Endpoint is the Fitbit OAuth2 endpoint. Fitbit requires client
// credentials in a Basic auth header on the token endpoint.
var Endpoint = oauth2.Endpoint{
	AuthURL:   authURL,
	TokenURL:  tokenURL,
	AuthStyle: oauth2.AuthStyleInHeader,
}

// Scopes cover the four data domains plus the profile read used to
// identify the connected account.
var Scopes = []string{"activity", "nutrition", "sleep", "weight", "profile"}

// OAuthClient wraps the OAuth2 flow against Fitbit.
type OAuthClient struct {
	config *oauth2.Config
	http   *http.Client
}

type profileResponse struct {
	User struct {
		EncodedID   string `json:"encodedId"`
		DisplayName string `json:"displayName"`
		FullName    string `json:"fullName"`
	} `json:"user"`
}

func NewOAuthClient(cfg *config.FitbitConfig) *OAuthClient {
	return &OAuthClient{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       Scopes,
			Endpoint:     Endpoint,
		},
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// GetAuthURL builds the consent page URL for the given state.
func (c *OAuthClient) GetAuthURL(state string) string {
	return c.config.AuthCodeURL(state)
}

// ExchangeCode trades the authorization code for a token set. Expiry
// is computed by the oauth2 package from the provider-reported lifetime.
func (c *OAuthClient) ExchangeCode(ctx context.Context, code string) (accessToken, refreshToken string, expiresAt time.Time, err error) {
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to exchange code: %w", err)
	}
	return token.AccessToken, token.RefreshToken, token.Expiry, nil
}

// GetAccountID fetches the connected account's provider user ID.
func (c *OAuthClient) GetAccountID(ctx context.Context, accessToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", apiBase+"/1/user/-/profile.json", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("failed to get profile: status %d, body: %s", resp.StatusCode, string(body))
	}

	var profile profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return "", fmt.Errorf("failed to decode profile: %w", err)
	}

	if profile.User.EncodedID == "" {
		return "", fmt.Errorf("profile response missing account ID")
	}

	return profile.User.EncodedID, nil
}

// Config exposes the underlying OAuth2 config for the token source.
func (c *OAuthClient) Config() *oauth2.Config {
	return c.config
}
