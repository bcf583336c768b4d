package model

import "github.com/vaultpass/passcheck/internal/strength"

// AnalyzeRequest carries a password to analyze, report on, or check.
type AnalyzeRequest struct {
	Password string `json:"password"`
}

// AnalyzeResponse is the analysis result plus the breach status.
type AnalyzeResponse struct {
	strength.Result
	Breached bool `json:"breached"`
}

// BreachResponse reports whether a password is in the breach list.
type BreachResponse struct {
	Breached bool `json:"breached"`
}

// CompareRequest carries the passwords to rank against each other.
type CompareRequest struct {
	Passwords []string `json:"passwords"`
}

// CompareEntry summarizes one compared password. The password itself is
// referred to only by its label.
type CompareEntry struct {
	Label     string            `json:"label"`
	Strength  strength.Category `json:"strength"`
	Score     int               `json:"score"`
	Entropy   float64           `json:"entropy"`
	CrackTime string            `json:"crack_time"`
}

// CompareResponse lists every entry and the index of the strongest one.
type CompareResponse struct {
	Results   []CompareEntry `json:"results"`
	Strongest int            `json:"strongest"`
}
