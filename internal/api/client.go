// Package api is a client for the dummyjson recipe and auth endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"recipebook/internal/domain"
)

const (
	recipesPath = "/recipes"
	loginPath   = "/auth/login"

	// bodies larger than this are treated as malformed
	maxBodyBytes = 8 << 20
)

// Client talks to the recipe service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the service at baseURL.
// The default http.Client has no timeout; callers bound requests with ctx.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type recipesResponse struct {
	Recipes *[]domain.Recipe `json:"recipes"`
	Total   int              `json:"total"`
	Skip    int              `json:"skip"`
	Limit   int              `json:"limit"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// ListRecipes fetches the recipe collection
func (c *Client) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	const op = "list recipes"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+recipesPath, nil)
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(op, req)
	if err != nil {
		return nil, err
	}

	var resp recipesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if resp.Recipes == nil {
		return nil, &TransportError{Op: op, Err: errors.New("response has no recipes field")}
	}

	recipes := *resp.Recipes
	warnDuplicateIDs(recipes)
	log.Printf("API: fetched %d recipes (total %d)", len(recipes), resp.Total)
	return recipes, nil
}

// Login submits credentials and returns the authenticated user.
// Tokens in the response are not retained.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	const op = "login"

	payload, err := json.Marshal(creds)
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("failed to marshal request body: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	body, err := c.do(op, req)
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if user.Username == "" {
		return nil, &TransportError{Op: op, Err: errors.New("response has no username")}
	}

	return &user, nil
}

// do sends the request and returns the body of a 2xx response
func (c *Client) do(op string, req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("failed to send request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("failed to read response: %w", err)}
	}
	if len(body) > maxBodyBytes {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("response exceeds %d bytes", maxBodyBytes)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rej := &RejectionError{Op: op, StatusCode: resp.StatusCode}
		var e errorResponse
		if json.Unmarshal(body, &e) == nil {
			rej.Message = e.Message
		}
		return nil, rej
	}

	return body, nil
}

func warnDuplicateIDs(recipes []domain.Recipe) {
	seen := make(map[int]struct{}, len(recipes))
	for _, r := range recipes {
		if _, dup := seen[r.ID]; dup {
			log.Printf("API: duplicate recipe id %d in response", r.ID)
			continue
		}
		seen[r.ID] = struct{}{}
	}
}
