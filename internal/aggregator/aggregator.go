package aggregator

import (
	"sort"
	"strings"

	"github.com/kurihiro0119/github-profile-advisor/internal/domain"
)

// Summarize normalizes a raw repository record
func Summarize(repo *domain.Repository) domain.RepositorySummary {
	description := domain.NoDescription
	if repo.Description != nil {
		description = *repo.Description
	}

	return domain.RepositorySummary{
		Name:        repo.Name,
		Language:    repo.Language,
		Description: description,
		Stars:       repo.Stars,
		Forks:       repo.Forks,
		UpdatedAt:   repo.UpdatedAt,
	}
}

// SummarizeAll summarizes repos, preserving listing order
func SummarizeAll(repos []*domain.Repository) []domain.RepositorySummary {
	summaries := make([]domain.RepositorySummary, 0, len(repos))
	for _, repo := range repos {
		summaries = append(summaries, Summarize(repo))
	}
	return summaries
}

// Totals returns the star and fork counts summed over summaries
func Totals(summaries []domain.RepositorySummary) (stars, forks int) {
	for _, s := range summaries {
		stars += s.Stars
		forks += s.Forks
	}
	return stars, forks
}

// TechStack joins the distinct languages of summaries with ", ".
// Repositories without a detected language are ignored. The result is sorted
// so the same set of languages always renders the same way.
func TechStack(summaries []domain.RepositorySummary) string {
	seen := make(map[string]struct{})
	var languages []string
	for _, s := range summaries {
		if s.Language == nil || *s.Language == "" {
			continue
		}
		if _, ok := seen[*s.Language]; ok {
			continue
		}
		seen[*s.Language] = struct{}{}
		languages = append(languages, *s.Language)
	}
	sort.Strings(languages)
	return strings.Join(languages, ", ")
}
