package wealth

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/datavest/wealth/date"
	"github.com/shopspring/decimal"
)

// Row is one observation period: a date and one value per competitor, in
// the column order of its table.
type Row struct {
	On     date.Date
	Values []decimal.Decimal
}

// Series is a table of competitor prices, one row per observation period.
// Dates are strictly increasing. A Series is never modified once built.
type Series struct {
	names []string
	rows  []Row
}

// NewSeries builds a Series from competitor names and rows.
//
// Names must be unique and non empty, every row must carry one value per name
// and dates must be strictly increasing. Inputs are copied.
func NewSeries(names []string, rows ...Row) (*Series, error) {
	if len(names) == 0 {
		return nil, errors.New("series has no competitor")
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "" {
			return nil, errors.New("series has an unnamed competitor")
		}
		if seen[n] {
			return nil, fmt.Errorf("duplicate competitor %q", n)
		}
		seen[n] = true
	}

	s := &Series{names: slices.Clone(names), rows: make([]Row, 0, len(rows))}
	for i, r := range rows {
		if len(r.Values) != len(names) {
			return nil, fmt.Errorf("row %s has %d values, want %d", r.On, len(r.Values), len(names))
		}
		if i > 0 && !r.On.After(rows[i-1].On) {
			return nil, fmt.Errorf("row %s is not after %s: dates must be strictly increasing", r.On, rows[i-1].On)
		}
		s.rows = append(s.rows, Row{On: r.On, Values: slices.Clone(r.Values)})
	}
	return s, nil
}

// Names returns the competitor names in column order.
func (s *Series) Names() []string { return slices.Clone(s.names) }

// Len returns the number of rows.
func (s *Series) Len() int { return len(s.rows) }

// Date returns the date of row i.
func (s *Series) Date(i int) date.Date { return s.rows[i].On }

// Dates returns all the row dates in chronological order.
func (s *Series) Dates() []date.Date {
	dates := make([]date.Date, len(s.rows))
	for i, r := range s.rows {
		dates[i] = r.On
	}
	return dates
}

// Value returns the value of competitor name at row i.
func (s *Series) Value(i int, name string) (decimal.Decimal, bool) {
	c := slices.Index(s.names, name)
	if c < 0 || i < 0 || i >= len(s.rows) {
		return zero, false
	}
	return s.rows[i].Values[c], true
}

// Column returns the values of competitor name in chronological order.
func (s *Series) Column(name string) ([]decimal.Decimal, bool) {
	c := slices.Index(s.names, name)
	if c < 0 {
		return nil, false
	}
	col := make([]decimal.Decimal, len(s.rows))
	for i, r := range s.rows {
		col[i] = r.Values[c]
	}
	return col, true
}

// Rows returns an iterator over the rows in chronological order.
// Yielded rows must not be modified.
func (s *Series) Rows() iter.Seq2[date.Date, []decimal.Decimal] {
	return func(yield func(date.Date, []decimal.Decimal) bool) {
		for _, r := range s.rows {
			if !yield(r.On, r.Values) {
				return
			}
		}
	}
}

// Range returns the first and last dates of the series.
func (s *Series) Range() date.Range {
	if len(s.rows) == 0 {
		return date.Range{}
	}
	return date.Range{From: s.rows[0].On, To: s.rows[len(s.rows)-1].On}
}

// Tail returns the series reduced to its last window rows.
func (s *Series) Tail(window int) (*Series, error) {
	if window <= 0 || window > len(s.rows) {
		return nil, &InsufficientDataError{Window: window, Rows: len(s.rows)}
	}
	// rows are never modified, sharing them is safe.
	return &Series{names: s.names, rows: s.rows[len(s.rows)-window:]}, nil
}

// baseline returns the first row, failing if any of its values is zero.
func (s *Series) baseline() ([]decimal.Decimal, error) {
	first := s.rows[0].Values
	for c, v := range first {
		if v.IsZero() {
			return nil, &DivisionByZeroError{Competitor: s.names[c]}
		}
	}
	return first, nil
}
