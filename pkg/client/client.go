package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kurihiro0119/github-profile-advisor/internal/domain"
)

// Client is the API client for github-profile-advisor
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// APIError is a non-200 answer from the server
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error: %d %s - %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("API error: %d - %s", e.StatusCode, e.Message)
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			// an analysis makes one GitHub call per repository
			Timeout: 2 * time.Minute,
		},
	}
}

// AnalyzeProfile rates a GitHub user and returns the improvement tips
func (c *Client) AnalyzeProfile(ctx context.Context, username string) (*domain.Report, error) {
	payload, err := json.Marshal(map[string]string{"username": username})
	if err != nil {
		return nil, err
	}

	var report domain.Report
	if err := c.do(ctx, http.MethodPost, "/analyze_profile", bytes.NewReader(payload), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// HealthCheck checks if the API is healthy
func (c *Client) HealthCheck(ctx context.Context) error {
	var response struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/health", nil, &response); err != nil {
		return err
	}
	if response.Status != "ok" {
		return fmt.Errorf("unhealthy status: %s", response.Status)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(raw)}

		var errBody struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(raw, &errBody) == nil && errBody.Error.Code != "" {
			apiErr.Code = errBody.Error.Code
			apiErr.Message = errBody.Error.Message
		}
		return apiErr
	}

	return json.NewDecoder(resp.Body).Decode(result)
}
