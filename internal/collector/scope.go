package collector

import (
	"context"

	"github.com/kurihiro0119/github-profile-advisor/internal/domain"
)

// RequestScope memoizes the results of a Collector for the lifetime of one
// analysis so every GitHub resource is fetched at most once. Failed calls are
// not memoized. A RequestScope is not safe for concurrent use.
type RequestScope struct {
	src      Collector
	profiles map[string]*domain.Profile
	repos    map[string][]*domain.Repository
	commits  map[string][]*domain.CommitMessage
	events   map[string][]*domain.Event
}

// NewRequestScope wraps src in a fresh, empty scope
func NewRequestScope(src Collector) *RequestScope {
	return &RequestScope{
		src:      src,
		profiles: make(map[string]*domain.Profile),
		repos:    make(map[string][]*domain.Repository),
		commits:  make(map[string][]*domain.CommitMessage),
		events:   make(map[string][]*domain.Event),
	}
}

// GetProfile returns the memoized profile of username
func (s *RequestScope) GetProfile(ctx context.Context, username string) (*domain.Profile, error) {
	if p, ok := s.profiles[username]; ok {
		return p, nil
	}
	p, err := s.src.GetProfile(ctx, username)
	if err != nil {
		return nil, err
	}
	s.profiles[username] = p
	return p, nil
}

// GetRepositories returns the memoized repositories of username
func (s *RequestScope) GetRepositories(ctx context.Context, username string) ([]*domain.Repository, error) {
	if r, ok := s.repos[username]; ok {
		return r, nil
	}
	r, err := s.src.GetRepositories(ctx, username)
	if err != nil {
		return nil, err
	}
	s.repos[username] = r
	return r, nil
}

// GetCommitMessages returns the memoized commit messages of owner/repo
func (s *RequestScope) GetCommitMessages(ctx context.Context, owner, repo string) ([]*domain.CommitMessage, error) {
	key := owner + "/" + repo
	if m, ok := s.commits[key]; ok {
		return m, nil
	}
	m, err := s.src.GetCommitMessages(ctx, owner, repo)
	if err != nil {
		return nil, err
	}
	s.commits[key] = m
	return m, nil
}

// GetEvents returns the memoized events of username
func (s *RequestScope) GetEvents(ctx context.Context, username string) ([]*domain.Event, error) {
	if e, ok := s.events[username]; ok {
		return e, nil
	}
	e, err := s.src.GetEvents(ctx, username)
	if err != nil {
		return nil, err
	}
	s.events[username] = e
	return e, nil
}
