package collector

import (
	"context"

	"github.com/kurihiro0119/github-profile-advisor/internal/domain"
)

// Collector defines the interface for reading GitHub data about a user
type Collector interface {
	// GetProfile retrieves the public profile of a user
	GetProfile(ctx context.Context, username string) (*domain.Profile, error)

	// GetRepositories retrieves the first page of a user's repositories
	GetRepositories(ctx context.Context, username string) ([]*domain.Repository, error)

	// GetCommitMessages retrieves the first page of commit messages of a repository
	GetCommitMessages(ctx context.Context, owner, repo string) ([]*domain.CommitMessage, error)

	// GetEvents retrieves the first page of events performed by a user
	GetEvents(ctx context.Context, username string) ([]*domain.Event, error)
}
