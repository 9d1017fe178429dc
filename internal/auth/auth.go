// Package auth implements Reddit's application-only OAuth2 flow.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// TokenURL is Reddit's OAuth2 token endpoint.
const TokenURL = "https://www.reddit.com/api/v1/access_token"

// DefaultUserAgent identifies the scraper when no REDDIT_USER_AGENT is set.
const DefaultUserAgent = "PoliticalPolarizationResearch/1.0"

// expiryMargin refreshes tokens slightly before Reddit invalidates them.
const expiryMargin = time.Minute

// Credentials holds the script-app client ID and secret.
type Credentials struct {
	ClientID     string
	ClientSecret string
	UserAgent    string
}

// LoadCredentials reads credentials from the environment, consulting a .env
// file in the working directory first. ClientID and ClientSecret are required;
// UserAgent falls back to DefaultUserAgent.
func LoadCredentials() (*Credentials, error) {
	_ = godotenv.Load()

	id := os.Getenv("REDDIT_CLIENT_ID")
	if id == "" {
		return nil, errors.New("REDDIT_CLIENT_ID is required")
	}
	secret := os.Getenv("REDDIT_CLIENT_SECRET")
	if secret == "" {
		return nil, errors.New("REDDIT_CLIENT_SECRET is required")
	}

	ua := os.Getenv("REDDIT_USER_AGENT")
	if ua == "" {
		ua = DefaultUserAgent
	}

	return &Credentials{
		ClientID:     id,
		ClientSecret: secret,
		UserAgent:    ua,
	}, nil
}

// Authenticator fetches and caches application-only bearer tokens.
type Authenticator struct {
	creds      *Credentials
	tokenURL   string
	httpClient *http.Client
	logger     *slog.Logger

	mu      sync.Mutex
	token   string
	expires time.Time
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// New creates an Authenticator for the given credentials.
func New(creds *Credentials, opts ...Option) *Authenticator {
	a := &Authenticator{
		creds:    creds,
		tokenURL: TokenURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// WithTokenURL overrides the token endpoint.
func WithTokenURL(u string) Option {
	return func(a *Authenticator) {
		a.tokenURL = u
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(a *Authenticator) {
		a.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Authenticator) {
		a.logger = logger
	}
}

// Token returns a valid bearer token, fetching a fresh one when the cached
// token is missing or within a minute of expiry.
func (a *Authenticator) Token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token != "" && time.Now().Before(a.expires.Add(-expiryMargin)) {
		return a.token, nil
	}

	tok, err := a.fetchToken(ctx)
	if err != nil {
		return "", err
	}

	a.token = tok.AccessToken
	a.expires = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)

	a.logger.Debug("obtained access token",
		"token_type", tok.TokenType,
		"expires_in", tok.ExpiresIn,
	)

	return a.token, nil
}

// tokenResponse is Reddit's answer to a client_credentials grant.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
}

// fetchToken performs the client_credentials grant against the token endpoint.
func (a *Authenticator) fetchToken(ctx context.Context) (*tokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create token request: %w", err)
	}

	req.SetBasicAuth(a.creds.ClientID, a.creds.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", a.creds.UserAgent)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return nil, fmt.Errorf("unmarshal token response: %w", err)
	}
	if tok.AccessToken == "" {
		return nil, errors.New("token endpoint returned no access_token")
	}

	return &tok, nil
}
