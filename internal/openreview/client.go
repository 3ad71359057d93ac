// Package openreview is a minimal client for the OpenReview API v2,
// covering the calls needed to build an accepted-papers catalog.
package openreview

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the OpenReview API v2 base URL.
	BaseURL = "https://api2.openreview.net"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 60 * time.Second

	// RateLimit keeps requests well under OpenReview's throttling.
	RateLimit = 5.0

	// notesPageSize is the page size used when listing notes.
	notesPageSize = 1000
)

// Sentinel errors for common API failures.
var (
	ErrAuthError   = errors.New("openreview authentication failed")
	ErrRateLimited = errors.New("openreview rate limit exceeded")
)

// APIError represents a non-auth HTTP failure from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openreview API error: HTTP %d: %s", e.StatusCode, e.Message)
}

// Client is a rate-limited HTTP client for the OpenReview API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	token      string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithToken sets a pre-obtained API token.
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// NewClient creates a new OpenReview API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Login exchanges credentials for an API token and stores it on the
// client for subsequent requests.
func (c *Client) Login(ctx context.Context, username, password string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	body, err := json.Marshal(map[string]string{"id": username, "password": password})
	if err != nil {
		return fmt.Errorf("encoding login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}
	defer resp.Body.Close()

	if err := checkHTTPErrors(resp); err != nil {
		return err
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("parsing login response: %w", err)
	}
	if result.Token == "" {
		return fmt.Errorf("%w: no token in login response", ErrAuthError)
	}

	c.token = result.Token
	return nil
}

// checkHTTPErrors returns an error if the HTTP response indicates a problem.
func checkHTTPErrors(resp *http.Response) error {
	if resp.StatusCode == 401 || resp.StatusCode == 403 {
		return fmt.Errorf("%w: status %d", ErrAuthError, resp.StatusCode)
	}
	if resp.StatusCode == 429 {
		return fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP %d", resp.StatusCode),
		}
	}
	return nil
}

// getJSON performs a rate-limited GET and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if err := checkHTTPErrors(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("parsing %s response: %w", path, err)
	}
	return nil
}

// GetGroup fetches a single group by ID.
func (c *Client) GetGroup(ctx context.Context, id string) (*Group, error) {
	params := url.Values{"id": {id}}

	var result struct {
		Groups []Group `json:"groups"`
	}
	if err := c.getJSON(ctx, "/groups", params, &result); err != nil {
		return nil, err
	}
	if len(result.Groups) == 0 {
		return nil, fmt.Errorf("group %q not found", id)
	}
	return &result.Groups[0], nil
}

// VenueMembers returns the members of the top-level venues group.
func (c *Client) VenueMembers(ctx context.Context) ([]string, error) {
	group, err := c.GetGroup(ctx, "venues")
	if err != nil {
		return nil, err
	}
	return group.Members, nil
}

// GetAllNotes fetches every note for an invitation, following offset
// pagination. details is an optional comma-separated detail spec
// (e.g. "replies").
func (c *Client) GetAllNotes(ctx context.Context, invitation, details string) ([]Note, error) {
	var all []Note
	offset := 0

	for {
		params := url.Values{
			"invitation": {invitation},
			"limit":      {fmt.Sprint(notesPageSize)},
			"offset":     {fmt.Sprint(offset)},
		}
		if details != "" {
			params.Set("details", details)
		}

		var result struct {
			Notes []Note `json:"notes"`
			Count int    `json:"count"`
		}
		if err := c.getJSON(ctx, "/notes", params, &result); err != nil {
			return nil, err
		}

		all = append(all, result.Notes...)
		offset += len(result.Notes)
		if len(result.Notes) == 0 || offset >= result.Count {
			break
		}
	}

	return all, nil
}
