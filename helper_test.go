package wealth

import (
	"testing"

	"github.com/datavest/wealth/date"
	"github.com/shopspring/decimal"
)

// row is a helper for test to create a series row from float values.
func row(on string, values ...float64) Row {
	r := Row{On: date.MustParse(on), Values: make([]decimal.Decimal, len(values))}
	for i, v := range values {
		r.Values[i] = D(v)
	}
	return r
}

// mustSeries is a helper for test to create a series or fail.
func mustSeries(t *testing.T, names []string, rows ...Row) *Series {
	t.Helper()
	s, err := NewSeries(names, rows...)
	if err != nil {
		t.Fatalf("NewSeries() unexpected error: %v", err)
	}
	return s
}

// sample is three competitors over five weeks.
func sample(t *testing.T) *Series {
	return mustSeries(t, []string{"Alpha", "Beta", "Gamma"},
		row("2025-01-03", 10, 200, 5),
		row("2025-01-10", 20, 210, 5),
		row("2025-01-17", 25, 220, 4),
		row("2025-01-24", 30, 150, 6),
		row("2025-01-31", 40, 300, 5),
	)
}
