package early

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	signInPath      = "/developer/sign-in"
	timeEntriesPath = "/time-entries"
)

var (
	// ErrAuthentication marks a failed developer sign-in.
	ErrAuthentication = errors.New("authentication failed")
	// ErrFetch marks a failed time-entry query.
	ErrFetch = errors.New("time entry fetch failed")
)

// Client defines the upstream API operations the exporter consumes.
type Client interface {
	SignIn(ctx context.Context) (string, error)
	FetchTimeEntries(ctx context.Context, token, startISO, endISO string) ([]TimeEntry, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type ClientConfig struct {
	BaseURL    string
	APIKey     string
	APISecret  string
	UserAgent  string
	HTTPClient httpDoer
}

type HTTPClient struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	userAgent  string
	httpClient httpDoer
}

func NewClient(cfg ClientConfig) (*HTTPClient, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, errors.New("base URL is required")
	}
	baseURL = strings.TrimRight(baseURL, "/")

	parsedBase, err := url.Parse(baseURL)
	if err != nil || parsedBase.Scheme == "" || parsedBase.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", cfg.BaseURL)
	}

	if strings.TrimSpace(cfg.APIKey) == "" || strings.TrimSpace(cfg.APISecret) == "" {
		return nil, errors.New("API key and secret are required")
	}

	doer := cfg.HTTPClient
	if doer == nil {
		doer = &http.Client{Timeout: 30 * time.Second}
	}

	return &HTTPClient{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		apiSecret:  strings.TrimSpace(cfg.APISecret),
		userAgent:  strings.TrimSpace(cfg.UserAgent),
		httpClient: doer,
	}, nil
}

type signInRequest struct {
	APIKey    string `json:"apiKey"`
	APISecret string `json:"apiSecret"`
}

type signInResponse struct {
	Token string `json:"token"`
}

// SignIn exchanges the API credentials for a bearer token.
func (c *HTTPClient) SignIn(ctx context.Context) (string, error) {
	payload, err := json.Marshal(signInRequest{APIKey: c.apiKey, APISecret: c.apiSecret})
	if err != nil {
		return "", fmt.Errorf("marshal sign-in request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+signInPath, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setCommonHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthentication, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: sign-in returned status %d: %s", ErrAuthentication, resp.StatusCode, readErrorBody(resp.Body))
	}

	var signIn signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&signIn); err != nil {
		return "", fmt.Errorf("%w: decode sign-in response: %v", ErrAuthentication, err)
	}
	if strings.TrimSpace(signIn.Token) == "" {
		return "", fmt.Errorf("%w: sign-in response carried no token", ErrAuthentication)
	}

	log.Debug("signed in to time tracking API")
	return signIn.Token, nil
}

// FetchTimeEntries queries the inclusive instant range and returns the
// normalized entry list.
func (c *HTTPClient) FetchTimeEntries(ctx context.Context, token, startISO, endISO string) ([]TimeEntry, error) {
	endpoint := fmt.Sprintf("%s%s/%s/%s", c.baseURL, timeEntriesPath, startISO, endISO)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create time entries request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	c.setCommonHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrFetch, resp.StatusCode, readErrorBody(resp.Body))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read time entries response: %w", err)
	}

	entries, err := normalizeEntries(raw)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"start":   startISO,
		"end":     endISO,
		"entries": len(entries),
	}).Debug("fetched time entries")
	return entries, nil
}

func (c *HTTPClient) setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
}

func readErrorBody(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 4096))
	return strings.TrimSpace(string(raw))
}
