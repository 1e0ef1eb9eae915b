package rating

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurihiro0119/github-profile-advisor/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestFollowersScore(t *testing.T) {
	prev := -1.0
	for _, f := range []int{0, 1, 100, 2500, 4999, 5000, 5001, 1_000_000} {
		b := Compute(&domain.Profile{Followers: f}, nil)
		want := math.Min(float64(f)/5000, 1.0) * 4
		assert.InDelta(t, want, b.Followers, 1e-9, "followers=%d", f)
		assert.GreaterOrEqual(t, b.Followers, prev)
		assert.LessOrEqual(t, b.Followers, 4.0)
		prev = b.Followers
	}
}

func TestEmptyRepositories(t *testing.T) {
	b := Compute(&domain.Profile{}, nil)

	assert.Zero(t, b.RepoDescriptions)
	assert.Zero(t, b.Stars)
	assert.Zero(t, b.Forks)
	assert.Zero(t, b.Total)
}

func TestRatingIsCapped(t *testing.T) {
	profile := &domain.Profile{
		Followers:   1_000_000_000,
		PublicRepos: 1_000_000_000,
		Bio:         "Building developer tools and distributed systems in Go and Rust",
		Location:    "Berlin",
		Blog:        "https://example.dev",
		Company:     "Example",
	}
	summaries := []domain.RepositorySummary{
		{Stars: 1_000_000_000, Forks: 1_000_000_000, Description: "A fast and friendly HTTP router for Go"},
	}

	b := Compute(profile, summaries)

	assert.Equal(t, 13.0, b.Raw)
	assert.Equal(t, 10.0, b.Total)
}

func TestSubScores(t *testing.T) {
	profile := &domain.Profile{
		Followers:   250,
		PublicRepos: 20,
		Bio:         "Backend engineer",
		Location:    "Lisbon",
	}
	summaries := []domain.RepositorySummary{
		{Stars: 100, Forks: 10, Description: "Command line tool for managing dotfiles across machines"},
		{Stars: 50, Forks: 15, Description: "Small utility"},
		{Stars: 0, Forks: 0, Description: domain.NoDescription},
		{Stars: 0, Forks: 0, Description: "one two three four"},
	}

	b := Compute(profile, summaries)

	assert.InDelta(t, 0.2, b.Followers, 1e-9)
	assert.InDelta(t, 0.3, b.PublicRepos, 1e-9)
	assert.InDelta(t, 0.3, b.Stars, 1e-9)
	assert.InDelta(t, 0.05, b.Forks, 1e-9)
	assert.InDelta(t, 0.2, b.Bio, 1e-9)
	assert.InDelta(t, 0.25, b.RepoDescriptions, 1e-9)
	assert.InDelta(t, 0.5, b.Backlinks, 1e-9)
	assert.Equal(t, 1.8, b.Total)
}

func TestBioRating(t *testing.T) {
	assert.Zero(t, bioRating(""))
	assert.Zero(t, bioRating("   "))
	assert.InDelta(t, 0.3, bioRating("Go\tRust  Python"), 1e-9)
	assert.Equal(t, 1.0, bioRating("one two three four five six seven eight nine ten eleven twelve"))
}

func TestBacklinksCountWhitespaceBioAsSet(t *testing.T) {
	b := Compute(&domain.Profile{Bio: " "}, nil)

	assert.Zero(t, b.Bio)
	assert.Equal(t, 0.25, b.Backlinks)
}

func TestRoundsToTwoDecimals(t *testing.T) {
	b := Compute(&domain.Profile{Followers: 1, PublicRepos: 1}, nil)

	// 0.0008 + 0.015
	assert.Equal(t, 0.02, b.Total)
}

func TestRoundsTiesToEven(t *testing.T) {
	// 0.375 + 0.25 is exactly 0.625
	b := Compute(&domain.Profile{PublicRepos: 25, Location: "Berlin"}, nil)

	assert.Equal(t, 0.625, b.Raw)
	assert.Equal(t, 0.62, b.Total)
	assert.Equal(t, 0.38, round2(0.375))
	assert.Equal(t, 0.12, round2(0.125))
}

type fakeSource struct {
	profile *domain.Profile
	repos   []*domain.Repository
	err     error
}

func (f *fakeSource) GetProfile(ctx context.Context, username string) (*domain.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func (f *fakeSource) GetRepositories(ctx context.Context, username string) ([]*domain.Repository, error) {
	return f.repos, nil
}

func TestEngineRate(t *testing.T) {
	src := &fakeSource{
		profile: &domain.Profile{Followers: 100, PublicRepos: 4},
		repos: []*domain.Repository{
			{Name: "a", Stars: 500, Forks: 250, Description: strPtr("Tiny library for parsing INI files")},
			{Name: "b"},
		},
	}

	b, err := NewEngine().Rate(context.Background(), src, "octocat")
	require.NoError(t, err)

	// 0.08 + 0.06 + 1 + 0.5 + 0 + 0.5 + 0
	assert.Equal(t, 2.14, b.Total)
}

func TestEngineRatePropagatesErrors(t *testing.T) {
	cause := errors.New("upstream down")

	_, err := NewEngine().Rate(context.Background(), &fakeSource{err: cause}, "octocat")
	assert.ErrorIs(t, err, cause)
}

func TestNewUserScenario(t *testing.T) {
	profile := &domain.Profile{Login: "newbie", Followers: 100, PublicRepos: 5}

	b := Compute(profile, nil)

	assert.Zero(t, b.Bio)
	assert.Zero(t, b.Backlinks)
	assert.InDelta(t, 0.08+0.075, b.Raw, 1e-9)
	assert.Equal(t, round2(b.Followers+b.PublicRepos), b.Total)
}
