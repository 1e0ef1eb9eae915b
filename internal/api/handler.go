package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kurihiro0119/github-profile-advisor/internal/analyzer"
	"github.com/kurihiro0119/github-profile-advisor/internal/collector"
	"github.com/kurihiro0119/github-profile-advisor/internal/domain"
	apperrors "github.com/kurihiro0119/github-profile-advisor/internal/errors"
)

// Handler handles API requests
type Handler struct {
	analyzer    analyzer.Analyzer
	rateTracker collector.RateTracker
}

// NewHandler creates a new API handler
func NewHandler(a analyzer.Analyzer, rateTracker collector.RateTracker) *Handler {
	return &Handler{
		analyzer:    a,
		rateTracker: rateTracker,
	}
}

// AnalyzeRequest is the body of POST /analyze_profile
type AnalyzeRequest struct {
	Username string `json:"username"`
}

// AnalyzeProfile rates a GitHub profile and suggests improvements
// POST /analyze_profile
func (h *Handler) AnalyzeProfile(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("request body must be a JSON object with a username field"))
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		respondError(c, apperrors.NewBadRequestError("username is required"))
		return
	}
	if !domain.ValidUsername(username) {
		respondError(c, apperrors.NewBadRequestError(fmt.Sprintf("%q is not a valid GitHub username", username)))
		return
	}

	report, err := h.analyzer.Analyze(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// HealthCheck returns the health status of the API
// GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	body := gin.H{
		"status": "ok",
	}
	if h.rateTracker != nil {
		if remaining, reset, known := h.rateTracker.CheckLimit(); known {
			body["github_rate_remaining"] = remaining
			body["github_rate_reset"] = reset.UTC()
		}
	}
	c.JSON(http.StatusOK, body)
}

// statusFor maps an error code onto an HTTP status
func statusFor(code apperrors.ErrCode) int {
	switch code {
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apperrors.ErrCodeBadRequest:
		return http.StatusBadRequest
	case apperrors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case apperrors.ErrCodeUpstream:
		return http.StatusBadGateway
	case apperrors.ErrCodeUpstreamTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// respondError sends an error response
func respondError(c *gin.Context, err error) {
	code := apperrors.CodeOf(err)
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		log.Printf("request %s failed: %v", c.GetString(requestIDKey), err)
	}

	message := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
