package service

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/vaultpass/passcheck/internal/breach"
	"github.com/vaultpass/passcheck/internal/metrics"
	"github.com/vaultpass/passcheck/internal/model"
	"github.com/vaultpass/passcheck/internal/report"
	"github.com/vaultpass/passcheck/internal/strength"
)

const (
	MinCompare = 2
	MaxCompare = 5
)

var (
	// ErrEmptyPassword means there is nothing to analyze. Callers show
	// nothing rather than an error.
	ErrEmptyPassword = errors.New("password is required")
	ErrCompareCount  = fmt.Errorf("between %d and %d passwords can be compared", MinCompare, MaxCompare)
)

// AnalyzerService handles password analysis business logic.
type AnalyzerService struct {
	breaches *breach.List
	metrics  *metrics.Metrics
}

// NewAnalyzerService creates a new AnalyzerService. m may be nil.
func NewAnalyzerService(breaches *breach.List, m *metrics.Metrics) *AnalyzerService {
	if breaches == nil {
		breaches = breach.Default()
	}
	return &AnalyzerService{breaches: breaches, metrics: m}
}

// Analyze scores the password and checks it against the breach list.
func (s *AnalyzerService) Analyze(req model.AnalyzeRequest) (model.AnalyzeResponse, error) {
	result, ok := strength.Analyze(req.Password)
	if !ok {
		return model.AnalyzeResponse{}, ErrEmptyPassword
	}
	s.metrics.ObserveAnalysis(result.Strength)

	return model.AnalyzeResponse{
		Result:   result,
		Breached: s.isBreached(req.Password),
	}, nil
}

// CheckBreach reports whether the password is a known breached password.
func (s *AnalyzerService) CheckBreach(req model.AnalyzeRequest) model.BreachResponse {
	return model.BreachResponse{Breached: s.isBreached(req.Password)}
}

// Compare analyzes each password and picks the highest score; the first
// one wins a tie. All empty slots are reported together.
func (s *AnalyzerService) Compare(req model.CompareRequest) (model.CompareResponse, error) {
	if n := len(req.Passwords); n < MinCompare || n > MaxCompare {
		return model.CompareResponse{}, ErrCompareCount
	}

	var errs *multierror.Error
	for i, pw := range req.Passwords {
		if pw == "" {
			errs = multierror.Append(errs, fmt.Errorf("password %d: %w", i+1, ErrEmptyPassword))
		}
	}
	if errs != nil {
		errs.ErrorFormat = joinErrors
		return model.CompareResponse{}, errs
	}

	resp := model.CompareResponse{Results: make([]model.CompareEntry, 0, len(req.Passwords))}
	for i, pw := range req.Passwords {
		result, _ := strength.Analyze(pw)
		resp.Results = append(resp.Results, model.CompareEntry{
			Label:     fmt.Sprintf("Password %d", i+1),
			Strength:  result.Strength,
			Score:     result.Score,
			Entropy:   result.Entropy,
			CrackTime: result.CrackTime,
		})
		if result.Score > resp.Results[resp.Strongest].Score {
			resp.Strongest = i
		}
	}
	s.metrics.IncrementComparisons()

	return resp, nil
}

// Report writes the text report for the password, stamped with at.
func (s *AnalyzerService) Report(w io.Writer, req model.AnalyzeRequest, at time.Time, opts report.Options) error {
	resp, err := s.Analyze(req)
	if err != nil {
		return err
	}

	return report.Write(w, report.Data{
		Result:      resp.Result,
		Breached:    resp.Breached,
		GeneratedAt: at,
	}, opts)
}

func (s *AnalyzerService) isBreached(password string) bool {
	if !s.breaches.Contains(password) {
		return false
	}
	s.metrics.IncrementBreachHits()
	return true
}

func joinErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
