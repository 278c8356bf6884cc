// Package client is a Go consumer of the clinic API: a session that holds
// the bearer token and per-entity stores that cache fetched collections.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/vetcarehq/vetclinic-api/internal/model"
	apperrors "github.com/vetcarehq/vetclinic-api/pkg/errors"
)

const maxResponseBody = 1 << 20

// Config is read from VETCLINIC_* environment variables.
type Config struct {
	BaseURL string        `envconfig:"BASE_URL" default:"http://localhost:8080"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("VETCLINIC", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load client config: %w", err)
	}
	return &cfg, nil
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []apperrors.FieldError
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status=%d message=%s", e.StatusCode, e.Message)
}

type Client struct {
	http    *http.Client
	baseURL string
	session *Session
}

func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		loaded, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		session: &Session{},
	}, nil
}

func (c *Client) Session() *Session {
	return c.session
}

// Login authenticates and binds the returned token to the session.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp model.TokenResponse
	req := model.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, req, &resp); err != nil {
		return err
	}
	c.session.start(resp.Token, email, resp.Expiration)
	return nil
}

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, email, password string) error {
	req := model.RegisterRequest{Email: email, Password: password, ConfirmPassword: password}
	return c.do(ctx, http.MethodPost, "/api/v1/auth/register", nil, req, nil)
}

func (c *Client) Logout() {
	c.session.clear()
}

// DashboardStats fetches the aggregate counters for the signed-in owner.
func (c *Client) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/api/v1/dashboard/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusUnauthorized {
			c.session.expire()
		}
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp struct {
			Message string                 `json:"message"`
			Fields  []apperrors.FieldError `json:"fields"`
		}
		if json.Unmarshal(raw, &errResp) == nil {
			apiErr.Message = errResp.Message
			apiErr.Fields = errResp.Fields
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
