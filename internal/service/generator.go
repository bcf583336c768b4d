package service

import (
	"github.com/vaultpass/passcheck/internal/crypto"
	"github.com/vaultpass/passcheck/internal/metrics"
	"github.com/vaultpass/passcheck/internal/model"
	"github.com/vaultpass/passcheck/internal/strength"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	metrics *metrics.Metrics
}

// NewGeneratorService creates a new GeneratorService. m may be nil.
func NewGeneratorService(m *metrics.Metrics) *GeneratorService {
	return &GeneratorService{metrics: m}
}

// Generate produces a password based on the given request and, when asked,
// scores it with the same analysis used for user-entered passwords.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	if opts.Length == 0 {
		opts.Length = crypto.DefaultOptions().Length
	}

	password, err := crypto.Generate(opts)
	if err != nil {
		s.metrics.IncrementGenerations(metrics.OutcomeRejected)
		return model.GenerateResponse{}, err
	}
	s.metrics.IncrementGenerations(metrics.OutcomeGenerated)

	resp := model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}
	if req.Evaluate {
		if result, ok := strength.Analyze(password); ok {
			resp.Analysis = &result
		}
	}

	return resp, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
