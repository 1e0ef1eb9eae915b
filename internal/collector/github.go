package collector

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v55/github"
	"golang.org/x/oauth2"

	"github.com/kurihiro0119/github-profile-advisor/internal/domain"
	apperrors "github.com/kurihiro0119/github-profile-advisor/internal/errors"
	"github.com/kurihiro0119/github-profile-advisor/internal/metrics"
)

const defaultTimeout = 10 * time.Second

// Options configures the GitHub collector
type Options struct {
	// BaseURL overrides https://api.github.com/ (GitHub Enterprise, tests)
	BaseURL string
	// Timeout bounds every single API call
	Timeout     time.Duration
	RateTracker RateTracker
	Metrics     *metrics.Metrics
}

// githubCollector implements Collector using GitHub API
type githubCollector struct {
	client      *github.Client
	timeout     time.Duration
	rateTracker RateTracker
	metrics     *metrics.Metrics
}

// NewGitHubCollector creates a new GitHub collector
func NewGitHubCollector(token string, opts Options) (Collector, error) {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	if opts.BaseURL != "" {
		baseURL := opts.BaseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL: %w", err)
		}
		client.BaseURL = u
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	tracker := opts.RateTracker
	if tracker == nil {
		tracker = NewRateTracker()
	}

	return &githubCollector{
		client:      client,
		timeout:     timeout,
		rateTracker: tracker,
		metrics:     opts.Metrics,
	}, nil
}

// GetProfile retrieves the public profile of a user
func (c *githubCollector) GetProfile(ctx context.Context, username string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	user, resp, err := c.client.Users.Get(ctx, username)
	c.observe("profile", resp, err)
	if err != nil {
		return nil, translateError("get profile", "user "+username, err)
	}

	return &domain.Profile{
		Login:       user.GetLogin(),
		HasAvatar:   user.GetAvatarURL() != "",
		Bio:         user.GetBio(),
		Blog:        user.GetBlog(),
		Location:    user.GetLocation(),
		Company:     user.GetCompany(),
		Followers:   user.GetFollowers(),
		PublicRepos: user.GetPublicRepos(),
	}, nil
}

// GetRepositories retrieves the first page of a user's repositories
func (c *githubCollector) GetRepositories(ctx context.Context, username string) ([]*domain.Repository, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	repos, resp, err := c.client.Repositories.List(ctx, username, &github.RepositoryListOptions{})
	c.observe("repositories", resp, err)
	if err != nil {
		return nil, translateError("list repositories", "user "+username, err)
	}

	result := make([]*domain.Repository, 0, len(repos))
	for _, repo := range repos {
		if repo.UpdatedAt == nil {
			return nil, apperrors.NewUpstreamError(
				fmt.Sprintf("repository %s has no updated_at", repo.GetName()), nil)
		}
		result = append(result, &domain.Repository{
			Name:        repo.GetName(),
			Language:    repo.Language,
			Description: repo.Description,
			Stars:       repo.GetStargazersCount(),
			Forks:       repo.GetForksCount(),
			UpdatedAt:   repo.UpdatedAt.Time.UTC(),
		})
	}

	return result, nil
}

// GetCommitMessages retrieves the first page of commit messages of a repository
func (c *githubCollector) GetCommitMessages(ctx context.Context, owner, repo string) ([]*domain.CommitMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	commits, resp, err := c.client.Repositories.ListCommits(ctx, owner, repo, &github.CommitsListOptions{})
	if err != nil {
		// Skip if repository is empty
		if resp != nil && resp.StatusCode == http.StatusConflict {
			c.observe("commits", resp, nil)
			return []*domain.CommitMessage{}, nil
		}
		c.observe("commits", resp, err)
		return nil, translateError("list commits", fmt.Sprintf("repository %s/%s", owner, repo), err)
	}
	c.observe("commits", resp, nil)

	messages := make([]*domain.CommitMessage, 0, len(commits))
	for _, commit := range commits {
		messages = append(messages, &domain.CommitMessage{
			Repo: repo,
			Text: commit.GetCommit().GetMessage(),
		})
	}

	return messages, nil
}

// GetEvents retrieves the first page of events performed by a user
func (c *githubCollector) GetEvents(ctx context.Context, username string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	events, resp, err := c.client.Activity.ListEventsPerformedByUser(ctx, username, false, &github.ListOptions{})
	c.observe("events", resp, err)
	if err != nil {
		return nil, translateError("list events", "user "+username, err)
	}

	result := make([]*domain.Event, 0, len(events))
	for _, event := range events {
		result = append(result, &domain.Event{Type: event.GetType()})
	}

	return result, nil
}

// observe records the call outcome and the rate limit reported by the response
func (c *githubCollector) observe(resource string, resp *github.Response, err error) {
	outcome := "ok"
	if err != nil {
		outcome = string(apperrors.CodeOf(translateError("", "", err)))
	}
	c.metrics.ObserveUpstream(resource, outcome)

	// Responses without rate headers (e.g. enterprise with limits disabled) report Limit 0
	if resp != nil && resp.Rate.Limit > 0 {
		c.rateTracker.UpdateLimit(resp.Rate.Remaining, resp.Rate.Reset.Time)
		c.metrics.SetRateRemaining(resp.Rate.Remaining)
	}
}

// translateError maps go-github and transport errors onto application errors
func translateError(action, target string, err error) error {
	var (
		rateErr  *github.RateLimitError
		abuseErr *github.AbuseRateLimitError
		errResp  *github.ErrorResponse
		netErr   net.Error
	)

	switch {
	case errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()):
		return apperrors.NewUpstreamTimeoutError(fmt.Sprintf("GitHub did not answer in time to %s", action), err)
	case errors.As(err, &rateErr) || errors.As(err, &abuseErr):
		return apperrors.NewRateLimitedError(fmt.Sprintf("GitHub rate limit exceeded, could not %s", action))
	case errors.As(err, &errResp) && errResp.Response != nil:
		switch errResp.Response.StatusCode {
		case http.StatusNotFound:
			return apperrors.NewNotFoundError(target)
		case http.StatusUnauthorized:
			return apperrors.NewUnauthorizedError("GitHub rejected the configured token")
		case http.StatusForbidden:
			return apperrors.NewForbiddenError(fmt.Sprintf("GitHub denied access, could not %s", action))
		}
	}

	return apperrors.NewUpstreamError(fmt.Sprintf("failed to %s", action), err)
}
