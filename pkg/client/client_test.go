package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurihiro0119/github-profile-advisor/internal/domain"
)

func TestAnalyzeProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/analyze_profile", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "octocat", req["username"])

		_, _ = w.Write([]byte(`{
			"Profile Name": "octocat",
			"Followers": 10,
			"Predominant Tech Stack": "Go",
			"Rating": 1.23,
			"Profile Improvement Tips": ["Add a professional profile picture."]
		}`))
	}))
	defer srv.Close()

	report, err := NewClient(srv.URL).AnalyzeProfile(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, &domain.Report{
		ProfileName: "octocat",
		Followers:   10,
		TechStack:   "Go",
		Rating:      1.23,
		Tips:        []domain.Tip{domain.TipAvatar},
	}, report)
}

func TestAnalyzeProfileAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": {"code": "NOT_FOUND", "message": "user ghost not found"}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).AnalyzeProfile(context.Background(), "ghost")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "user ghost not found", apiErr.Message)
}

func TestHealthCheck(t *testing.T) {
	status := "ok"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status": "` + status + `"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	assert.NoError(t, c.HealthCheck(context.Background()))

	status = "degraded"
	assert.EqualError(t, c.HealthCheck(context.Background()), "unhealthy status: degraded")
}

func TestPlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).HealthCheck(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.Code)
}
