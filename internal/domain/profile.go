package domain

// Profile represents a GitHub user profile
type Profile struct {
	Login       string
	HasAvatar   bool
	Bio         string // absent and empty are both ""
	Blog        string
	Location    string
	Company     string
	Followers   int
	PublicRepos int
}

// CommitMessage represents the message of a single commit
type CommitMessage struct {
	Repo string
	Text string
}

// EventTypePullRequest is the GitHub event type emitted for pull request activity
const EventTypePullRequest = "PullRequestEvent"

// Event represents a public GitHub event. Only the type is consumed.
type Event struct {
	Type string
}
