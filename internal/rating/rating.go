package rating

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/kurihiro0119/github-profile-advisor/internal/aggregator"
	"github.com/kurihiro0119/github-profile-advisor/internal/domain"
)

// MaxRating is the upper bound of the published scale
const MaxRating = 10.0

// Caps and weights of the sub-scores
const (
	followersCap    = 5000
	followersWeight = 4
	reposCap        = 200
	reposWeight     = 3
	starsCap        = 1000
	starsWeight     = 2
	forksCap        = 500
	forksWeight     = 1

	// descriptions need more than this many words to count
	descriptionMinWords = 4
)

// Source is the subset of the collector the engine reads from
type Source interface {
	GetProfile(ctx context.Context, username string) (*domain.Profile, error)
	GetRepositories(ctx context.Context, username string) ([]*domain.Repository, error)
}

// Breakdown holds every weighted sub-score and the final rating
type Breakdown struct {
	Followers        float64 `json:"followers"`
	PublicRepos      float64 `json:"public_repos"`
	Stars            float64 `json:"stars"`
	Forks            float64 `json:"forks"`
	Bio              float64 `json:"bio"`
	RepoDescriptions float64 `json:"repo_descriptions"`
	Backlinks        float64 `json:"backlinks"`
	Raw              float64 `json:"raw"`
	Total            float64 `json:"total"`
}

// Engine rates GitHub profiles
type Engine struct{}

// NewEngine creates a new rating engine
func NewEngine() *Engine {
	return &Engine{}
}

// Rate fetches the profile and repositories of username and rates them
func (e *Engine) Rate(ctx context.Context, src Source, username string) (*Breakdown, error) {
	profile, err := src.GetProfile(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	repos, err := src.GetRepositories(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get repositories: %w", err)
	}

	b := Compute(profile, aggregator.SummarizeAll(repos))
	return &b, nil
}

// Compute rates a profile from already fetched data
func Compute(profile *domain.Profile, summaries []domain.RepositorySummary) Breakdown {
	stars, forks := aggregator.Totals(summaries)

	b := Breakdown{
		Followers:        capped(profile.Followers, followersCap) * followersWeight,
		PublicRepos:      capped(profile.PublicRepos, reposCap) * reposWeight,
		Stars:            capped(stars, starsCap) * starsWeight,
		Forks:            capped(forks, forksCap) * forksWeight,
		Bio:              bioRating(profile.Bio),
		RepoDescriptions: descriptionRating(summaries),
		Backlinks:        backlinkRating(profile),
	}
	b.Raw = b.Followers + b.PublicRepos + b.Stars + b.Forks + b.Bio + b.RepoDescriptions + b.Backlinks
	b.Total = round2(math.Min(b.Raw, MaxRating))
	return b
}

// capped returns min(value/limit, 1)
func capped(value, limit int) float64 {
	return math.Min(float64(value)/float64(limit), 1.0)
}

// bioRating gives 0.1 per word, up to 1
func bioRating(bio string) float64 {
	words := len(strings.Fields(bio))
	return math.Min(float64(words*10), 100) / 100
}

// descriptionRating is the share of repositories with a real description of
// more than descriptionMinWords words
func descriptionRating(summaries []domain.RepositorySummary) float64 {
	if len(summaries) == 0 {
		return 0
	}
	described := 0
	for _, s := range summaries {
		if s.Description == "" || s.Description == domain.NoDescription {
			continue
		}
		if len(strings.Fields(s.Description)) > descriptionMinWords {
			described++
		}
	}
	return float64(described) / float64(len(summaries))
}

// backlinkRating is the share of bio, location, blog and company that are set
func backlinkRating(p *domain.Profile) float64 {
	set := 0
	for _, field := range []string{p.Bio, p.Location, p.Blog, p.Company} {
		if field != "" {
			set++
		}
	}
	return float64(set) / 4
}

// round2 rounds to two decimals, ties to even
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
