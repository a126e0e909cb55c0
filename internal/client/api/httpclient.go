package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lookdine/lookdine/internal/client/models"
)

// HTTPClient talks JSON to the LookDine API over HTTP.
//
// A 401 on an authenticated request invokes the onUnauthorized hook exactly
// once per response (the hook clears stored credentials and navigates to the
// login screen) and the call fails with ErrSessionExpired.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	token string

	onUnauthorized func()
}

// NewHTTPClient builds a client against baseURL (e.g.
// "https://api.lookdine.app"). The onUnauthorized hook may be nil.
func NewHTTPClient(baseURL string, timeout time.Duration, onUnauthorized func()) *HTTPClient {
	return &HTTPClient{
		baseURL:        strings.TrimRight(baseURL, "/"),
		http:           &http.Client{Timeout: timeout},
		onUnauthorized: onUnauthorized,
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// envelope is the server's JSON response wrapper.
type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// doJSON performs one request and decodes the data portion of the response
// envelope into out (when out is non-nil). skipHook suppresses the
// unauthorized hook for calls where a 401 is an expected answer rather than
// an expired session (login, signup, verify, logout).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, out any, skipHook bool) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if !skipHook && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrSessionExpired
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// errorMessage extracts a human-readable message from an error response body.
// Non-JSON bodies yield an empty message; the status code still identifies
// the failure.
func errorMessage(raw []byte) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error != "" {
		return env.Error
	}
	var generic struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &generic); err == nil {
		return generic.Message
	}
	return ""
}

type authPayload struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.User, string, error) {
	var data authPayload
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", creds, &data, true); err != nil {
		return nil, "", err
	}
	c.SetToken(data.Token)
	return &data.User, data.Token, nil
}

func (c *HTTPClient) Signup(ctx context.Context, sd models.SignupData) (*models.User, string, error) {
	var data authPayload
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/signup", sd, &data, true); err != nil {
		return nil, "", err
	}
	c.SetToken(data.Token)
	return &data.User, data.Token, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, nil, true)
}

func (c *HTTPClient) Refresh(ctx context.Context) (string, error) {
	var data struct {
		Token string `json:"token"`
	}
	// A rejected refresh is an expired session, so the hook is not skipped.
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/refresh", nil, &data, false); err != nil {
		return "", err
	}
	c.SetToken(data.Token)
	return data.Token, nil
}

func (c *HTTPClient) Verify(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/api/auth/verify", nil, nil, true)
}

func (c *HTTPClient) Search(ctx context.Context, q models.SearchQuery) ([]models.Venue, error) {
	params := url.Values{}
	params.Set("q", q.Query)
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Price != "" {
		params.Set("price", q.Price)
	}
	if q.Rating > 0 {
		params.Set("rating", strconv.FormatFloat(q.Rating, 'f', -1, 64))
	}
	if q.Location != "" {
		params.Set("location", q.Location)
	}

	var data struct {
		Results []models.Venue `json:"results"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/search?"+params.Encode(), nil, &data, false); err != nil {
		return nil, err
	}
	return data.Results, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/api/health", nil, nil, true)
}
