package domain

import "time"

// NoDescription is used when a repository has no description
const NoDescription = "No description available"

// Repository represents a raw GitHub repository record
type Repository struct {
	Name        string
	Language    *string // nil when GitHub detected no dominant language
	Description *string
	Stars       int
	Forks       int
	UpdatedAt   time.Time
}

// RepositorySummary represents normalized repository metadata
type RepositorySummary struct {
	Name        string    `json:"repo_name"`
	Language    *string   `json:"language"`
	Description string    `json:"description"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}
