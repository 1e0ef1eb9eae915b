package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kurihiro0119/github-profile-advisor/internal/advisor"
	"github.com/kurihiro0119/github-profile-advisor/internal/aggregator"
	"github.com/kurihiro0119/github-profile-advisor/internal/collector"
	"github.com/kurihiro0119/github-profile-advisor/internal/domain"
	apperrors "github.com/kurihiro0119/github-profile-advisor/internal/errors"
	"github.com/kurihiro0119/github-profile-advisor/internal/metrics"
	"github.com/kurihiro0119/github-profile-advisor/internal/rating"
)

// Analyzer defines the interface for analyzing GitHub profiles
type Analyzer interface {
	// Analyze rates username and suggests improvements
	Analyze(ctx context.Context, username string) (*domain.Report, error)

	// AnalyzeDetailed is Analyze plus the rating breakdown
	AnalyzeDetailed(ctx context.Context, username string) (*domain.Report, *rating.Breakdown, error)
}

// analyzer implements the Analyzer interface
type analyzer struct {
	collector collector.Collector
	engine    *rating.Engine
	advisor   *advisor.Advisor
	metrics   *metrics.Metrics
}

// NewAnalyzer creates a new analyzer
func NewAnalyzer(c collector.Collector, engine *rating.Engine, adv *advisor.Advisor, m *metrics.Metrics) Analyzer {
	return &analyzer{
		collector: c,
		engine:    engine,
		advisor:   adv,
		metrics:   m,
	}
}

// Analyze rates username and suggests improvements
func (a *analyzer) Analyze(ctx context.Context, username string) (*domain.Report, error) {
	report, _, err := a.AnalyzeDetailed(ctx, username)
	return report, err
}

// AnalyzeDetailed is Analyze plus the rating breakdown
func (a *analyzer) AnalyzeDetailed(ctx context.Context, username string) (*domain.Report, *rating.Breakdown, error) {
	start := time.Now()
	report, breakdown, err := a.analyze(ctx, strings.TrimSpace(username))

	outcome := "ok"
	if err != nil {
		outcome = string(apperrors.CodeOf(err))
	}
	a.metrics.ObserveAnalysis(outcome, time.Since(start))

	return report, breakdown, err
}

func (a *analyzer) analyze(ctx context.Context, username string) (*domain.Report, *rating.Breakdown, error) {
	if username == "" {
		return nil, nil, apperrors.NewBadRequestError("username is required")
	}
	if !domain.ValidUsername(username) {
		return nil, nil, apperrors.NewBadRequestError(fmt.Sprintf("%q is not a valid GitHub username", username))
	}

	// Every component reads through the same scope, so each GitHub resource
	// is fetched at most once for this analysis.
	scope := collector.NewRequestScope(a.collector)

	breakdown, err := a.engine.Rate(ctx, scope, username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to rate %s: %w", username, err)
	}

	tips, err := a.advisor.Suggest(ctx, scope, username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to suggest improvements for %s: %w", username, err)
	}

	profile, err := scope.GetProfile(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	repos, err := scope.GetRepositories(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	name := profile.Login
	if name == "" {
		name = "N/A"
	}

	return &domain.Report{
		ProfileName: name,
		Followers:   profile.Followers,
		TechStack:   aggregator.TechStack(aggregator.SummarizeAll(repos)),
		Rating:      breakdown.Total,
		Tips:        tips,
	}, breakdown, nil
}
