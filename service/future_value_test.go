package service

import (
	"errors"
	"testing"
)

func TestCalculateFutureValue_ZeroYears(t *testing.T) {
	p, err := CalculateFutureValue(1000, 0.05, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(p.Principals) != 1 || len(p.SimpleInterestFVs) != 1 || len(p.CompoundInterestFVs) != 1 {
		t.Fatalf("expected single-entry projections, got %+v", p)
	}
	if p.Principals[0] != 1000 || p.SimpleInterestFVs[0] != 1000 || p.CompoundInterestFVs[0] != 1000 {
		t.Errorf("expected all series to be [1000], got %+v", p)
	}
}

func TestCalculateFutureValue_NoContribution(t *testing.T) {
	p, err := CalculateFutureValue(1000, 0.05, 0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedPrincipals := []float64{1000, 1000, 1000}
	expectedSimple := []float64{1000, 1050, 1100}
	expectedCompound := []float64{1000, 1050, 1102.5}

	for i := range expectedPrincipals {
		if p.Principals[i] != expectedPrincipals[i] {
			t.Errorf("principal %d: expected %.2f, got %.2f", i, expectedPrincipals[i], p.Principals[i])
		}
		if p.SimpleInterestFVs[i] != expectedSimple[i] {
			t.Errorf("simple %d: expected %.2f, got %.2f", i, expectedSimple[i], p.SimpleInterestFVs[i])
		}
		if p.CompoundInterestFVs[i] != expectedCompound[i] {
			t.Errorf("compound %d: expected %.2f, got %.2f", i, expectedCompound[i], p.CompoundInterestFVs[i])
		}
	}
}

func TestCalculateFutureValue_WithContribution(t *testing.T) {
	p, err := CalculateFutureValue(1000, 0.05, 100, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(p.Principals) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(p.Principals))
	}

	assertClose(t, 2200, p.Principals[1], "principal year 1")
	assertClose(t, 3400, p.Principals[2], "principal year 2")
	assertClose(t, 2310, p.SimpleInterestFVs[1], "simple year 1")
	assertClose(t, 3740, p.SimpleInterestFVs[2], "simple year 2")
	assertClose(t, 2283, p.CompoundInterestFVs[1], "compound year 1")
	assertClose(t, 3630.15, p.CompoundInterestFVs[2], "compound year 2")
}

func TestCalculateFutureValue_NegativeYears(t *testing.T) {
	if _, err := CalculateFutureValue(1000, 0.05, 0, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestCalculateFutureValue_BeyondHorizon(t *testing.T) {
	if _, err := CalculateFutureValue(1000, 0.05, 0, MaxProjectionYears+1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := CalculateFutureValue(1000, 0.05, 0, MaxProjectionYears); err != nil {
		t.Errorf("expected %d years to be accepted, got %v", MaxProjectionYears, err)
	}
}
