package model

import "github.com/vaultpass/passcheck/internal/strength"

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
	Evaluate  bool  `json:"evaluate"`
}

// GenerateResponse represents a password generation response.
// Analysis is set only when the request asked for evaluation.
type GenerateResponse struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Analysis *strength.Result `json:"analysis,omitempty"`
}
