package domain

// Tip is a profile improvement suggestion
type Tip string

const (
	TipAvatar     Tip = "Add a professional profile picture."
	TipBio        Tip = "Add a professional bio in the overview section."
	TipPortfolio  Tip = "Include links to personal projects and portfolio in your profile."
	TipRecentWork Tip = "Regularly update repositories with recent work."
	TipCommits    Tip = "Use descriptive commit messages and maintain a consistent commit history."
	TipOpenSource Tip = "Participate in open-source projects and contribute to community discussions."
)

// Report is the result of a profile analysis
type Report struct {
	ProfileName string  `json:"Profile Name"`
	Followers   int     `json:"Followers"`
	TechStack   string  `json:"Predominant Tech Stack"`
	Rating      float64 `json:"Rating"`
	Tips        []Tip   `json:"Profile Improvement Tips"`
}
