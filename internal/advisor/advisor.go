package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kurihiro0119/github-profile-advisor/internal/domain"
)

const (
	// repositories updated fewer than this many whole days ago count as recent
	recentDays = 30
	// commit messages need at least this many words
	minCommitWords = 3
)

// Source is the subset of the collector the advisor reads from
type Source interface {
	GetProfile(ctx context.Context, username string) (*domain.Profile, error)
	GetRepositories(ctx context.Context, username string) ([]*domain.Repository, error)
	GetCommitMessages(ctx context.Context, owner, repo string) ([]*domain.CommitMessage, error)
	GetEvents(ctx context.Context, username string) ([]*domain.Event, error)
}

// Advisor suggests profile improvements
type Advisor struct {
	now func() time.Time
}

// Option configures an Advisor
type Option func(*Advisor)

// WithClock replaces time.Now as the reference for the recency check
func WithClock(now func() time.Time) Option {
	return func(a *Advisor) {
		a.now = now
	}
}

// NewAdvisor creates a new advisor
func NewAdvisor(opts ...Option) *Advisor {
	a := &Advisor{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Suggest runs every check against username and returns the tips of the
// failed ones, in check order
func (a *Advisor) Suggest(ctx context.Context, src Source, username string) ([]domain.Tip, error) {
	tips := []domain.Tip{}

	profile, err := src.GetProfile(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if !profile.HasAvatar {
		tips = append(tips, domain.TipAvatar)
	}
	if profile.Bio == "" {
		tips = append(tips, domain.TipBio)
	}
	if profile.Blog == "" {
		tips = append(tips, domain.TipPortfolio)
	}

	repos, err := src.GetRepositories(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get repositories: %w", err)
	}

	if !hasRecentUpdate(repos, a.now().UTC()) {
		tips = append(tips, domain.TipRecentWork)
	}

	descriptive, err := commitsAreDescriptive(ctx, src, username, repos)
	if err != nil {
		return nil, err
	}
	if !descriptive {
		tips = append(tips, domain.TipCommits)
	}

	events, err := src.GetEvents(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	if !hasPullRequest(events) {
		tips = append(tips, domain.TipOpenSource)
	}

	return tips, nil
}

// hasRecentUpdate reports whether any repository was updated fewer than
// recentDays whole days before now
func hasRecentUpdate(repos []*domain.Repository, now time.Time) bool {
	for _, repo := range repos {
		if daysBetween(repo.UpdatedAt, now) < recentDays {
			return true
		}
	}
	return false
}

// daysBetween returns the number of whole days from t to now, rounding down.
// Timestamps in the future give negative values.
func daysBetween(t, now time.Time) int {
	d := now.Sub(t)
	days := int(d / (24 * time.Hour))
	if d < 0 && d%(24*time.Hour) != 0 {
		days--
	}
	return days
}

// commitsAreDescriptive walks the commits of every repository in listing order
// and stops at the first message with fewer than minCommitWords words
func commitsAreDescriptive(ctx context.Context, src Source, owner string, repos []*domain.Repository) (bool, error) {
	for _, repo := range repos {
		messages, err := src.GetCommitMessages(ctx, owner, repo.Name)
		if err != nil {
			return false, fmt.Errorf("failed to get commits of %s: %w", repo.Name, err)
		}
		for _, m := range messages {
			if len(strings.Fields(m.Text)) < minCommitWords {
				return false, nil
			}
		}
	}
	return true, nil
}

func hasPullRequest(events []*domain.Event) bool {
	for _, e := range events {
		if e.Type == domain.EventTypePullRequest {
			return true
		}
	}
	return false
}
