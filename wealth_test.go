package wealth

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestNormalize(t *testing.T) {
	s := sample(t)
	w, err := Normalize(s, 4, D(100))
	if err != nil {
		t.Fatal(err)
	}
	if w.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", w.Len())
	}
	if diff := cmp.Diff(s.Names(), w.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(s.Dates()[1:], w.Dates()); diff != "" {
		t.Errorf("Dates() mismatch (-want +got):\n%s", diff)
	}
	// Alpha: 20 -> 40, Beta: 210 -> 300, Gamma: 5 -> 5
	want := map[string][]string{
		"Alpha": {"100", "125", "150", "200"},
		"Gamma": {"100", "80", "120", "100"},
	}
	for name, values := range want {
		col, _ := w.Column(name)
		for i, v := range values {
			if !col[i].Equal(decimal.RequireFromString(v)) {
				t.Errorf("%s[%d] = %s, want %s", name, i, col[i], v)
			}
		}
	}
}

func TestNormalizeFirstRowIsInitial(t *testing.T) {
	s := sample(t)
	for _, initial := range []decimal.Decimal{D(1), D(100), D(0.333), D(1e9)} {
		for window := 1; window <= s.Len(); window++ {
			w, err := Normalize(s, window, initial)
			if err != nil {
				t.Fatal(err)
			}
			for _, name := range w.Names() {
				if v, _ := w.Value(0, name); !v.Equal(initial) {
					t.Errorf("Normalize(%d, %s) first %s = %s", window, initial, name, v)
				}
			}
		}
	}
}

func TestNormalizeScaleInvariance(t *testing.T) {
	s := sample(t)
	initial := D(100)
	for _, k := range []decimal.Decimal{D(2), D(0.5), D(3), D(7.25)} {
		base, err := Normalize(s, 5, initial)
		if err != nil {
			t.Fatal(err)
		}
		scaled, err := Normalize(s, 5, initial.Mul(k))
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < base.Len(); i++ {
			for _, name := range base.Names() {
				b, _ := base.Value(i, name)
				got, _ := scaled.Value(i, name)
				if !got.Equal(b.Mul(k)) {
					t.Errorf("k=%s row %d %s: got %s, want %s", k, i, name, got, b.Mul(k))
				}
			}
		}
	}
}

func TestNormalizeErrors(t *testing.T) {
	s := sample(t)
	var insufficient *InsufficientDataError
	if _, err := Normalize(s, 6, D(100)); !errors.As(err, &insufficient) {
		t.Errorf("Normalize(6) error = %v, want InsufficientDataError", err)
	}
	if _, err := Normalize(s, 0, D(100)); !errors.As(err, &insufficient) {
		t.Errorf("Normalize(0) error = %v, want InsufficientDataError", err)
	}

	zeroed := mustSeries(t, []string{"A", "B"}, row("2025-01-01", 1, 0), row("2025-01-08", 2, 1))
	var div *DivisionByZeroError
	if _, err := Normalize(zeroed, 2, D(100)); !errors.As(err, &div) || div.Competitor != "B" {
		t.Errorf("Normalize() error = %v, want DivisionByZeroError on B", err)
	}
	// the zero is dropped by a shorter window.
	if _, err := Normalize(zeroed, 1, D(100)); err != nil {
		t.Errorf("Normalize(1) unexpected error: %v", err)
	}
}

func TestCumulativeReturns(t *testing.T) {
	s := sample(t)
	got, err := CumulativeReturns(s, 5)
	if err != nil {
		t.Fatal(err)
	}
	want := []Return{
		{"Alpha", 300},
		{"Beta", 50},
		{"Gamma", 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CumulativeReturns() mismatch (-want +got):\n%s", diff)
	}
}
