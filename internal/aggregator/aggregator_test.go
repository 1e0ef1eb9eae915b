package aggregator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurihiro0119/github-profile-advisor/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestSummarizeDefaultsDescription(t *testing.T) {
	updated := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	s := Summarize(&domain.Repository{Name: "dotfiles", Stars: 3, Forks: 1, UpdatedAt: updated})

	assert.Equal(t, "dotfiles", s.Name)
	assert.Equal(t, "No description available", s.Description)
	assert.Nil(t, s.Language)
	assert.Equal(t, 3, s.Stars)
	assert.Equal(t, 1, s.Forks)
	assert.Equal(t, updated, s.UpdatedAt)
}

func TestSummarizePassesDescriptionThrough(t *testing.T) {
	s := Summarize(&domain.Repository{Name: "x", Description: strPtr("x"), Language: strPtr("Rust")})

	assert.Equal(t, "x", s.Description)
	require.NotNil(t, s.Language)
	assert.Equal(t, "Rust", *s.Language)

	again := Summarize(&domain.Repository{Name: s.Name, Description: strPtr(s.Description)})
	assert.Equal(t, s.Description, again.Description)
}

func TestSummarizeAllKeepsOrder(t *testing.T) {
	summaries := SummarizeAll([]*domain.Repository{{Name: "b"}, {Name: "a"}, {Name: "c"}})

	require.Len(t, summaries, 3)
	assert.Equal(t, "b", summaries[0].Name)
	assert.Equal(t, "a", summaries[1].Name)
	assert.Equal(t, "c", summaries[2].Name)
	assert.Empty(t, SummarizeAll(nil))
}

func TestTotals(t *testing.T) {
	stars, forks := Totals([]domain.RepositorySummary{{Stars: 10, Forks: 1}, {Stars: 5, Forks: 4}})
	assert.Equal(t, 15, stars)
	assert.Equal(t, 5, forks)

	stars, forks = Totals(nil)
	assert.Zero(t, stars)
	assert.Zero(t, forks)
}

func TestTechStack(t *testing.T) {
	summaries := []domain.RepositorySummary{
		{Language: strPtr("Python")},
		{Language: nil},
		{Language: strPtr("Go")},
		{Language: strPtr("Python")},
		{Language: strPtr("")},
	}

	assert.Equal(t, "Go, Python", TechStack(summaries))
	assert.Equal(t, "", TechStack(nil))
}
