package service

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vaultpass/passcheck/internal/crypto"
	"github.com/vaultpass/passcheck/internal/metrics"
	"github.com/vaultpass/passcheck/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService(nil)
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
	if resp.Analysis != nil {
		t.Error("expected no analysis unless requested")
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := NewGeneratorService(nil)
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerate_Evaluate(t *testing.T) {
	svc := NewGeneratorService(nil)
	resp, err := svc.Generate(model.GenerateRequest{Length: 20, Evaluate: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Analysis == nil {
		t.Fatal("expected analysis when evaluate is set")
	}
	if resp.Analysis.Score < 0 || resp.Analysis.Score > 100 {
		t.Errorf("score %d out of range", resp.Analysis.Score)
	}
	if !resp.Analysis.Criteria.Length {
		t.Error("a 20 character password should meet the length criterion")
	}
}

func TestGenerate_LengthTooShort(t *testing.T) {
	svc := NewGeneratorService(nil)
	_, err := svc.Generate(model.GenerateRequest{Length: 3})
	if !errors.Is(err, crypto.ErrLengthTooShort) {
		t.Fatalf("expected ErrLengthTooShort, got %v", err)
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := NewGeneratorService(nil)
	_, err := svc.Generate(model.GenerateRequest{Length: 200})
	if !errors.Is(err, crypto.ErrLengthTooLong) {
		t.Fatalf("expected ErrLengthTooLong, got %v", err)
	}
}

func TestGenerate_NoCharacterTypes(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	svc := NewGeneratorService(m)
	_, err := svc.Generate(model.GenerateRequest{
		Length:    10,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if !errors.Is(err, crypto.ErrNoCharacterTypes) {
		t.Fatalf("expected ErrNoCharacterTypes, got %v", err)
	}
	if got := testutil.ToFloat64(m.Generations.WithLabelValues(metrics.OutcomeRejected)); got != 1 {
		t.Errorf("rejected generations = %v, want 1", got)
	}
}
