package wealth

import (
	"slices"

	"github.com/datavest/wealth/date"
	"github.com/shopspring/decimal"
)

// RankTable holds, for each period, the rank of every competitor.
// Rank 1 is the highest price; tied competitors share the mean of the
// positions they occupy, so ranks are not always integers.
type RankTable struct {
	names []string
	dates []date.Date
	ranks [][]float64
}

// Rank ranks the competitors of each of the last window rows of s by
// descending raw price.
func Rank(s *Series, window int) (*RankTable, error) {
	tail, err := s.Tail(window)
	if err != nil {
		return nil, err
	}
	t := &RankTable{
		names: tail.names,
		dates: tail.Dates(),
		ranks: make([][]float64, 0, tail.Len()),
	}
	for _, values := range tail.Rows() {
		t.ranks = append(t.ranks, rankRow(values))
	}
	return t, nil
}

// rankRow returns the average ranks of values in descending order.
func rankRow(values []decimal.Decimal) []float64 {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return values[b].Cmp(values[a]) })

	ranks := make([]float64, len(values))
	for start := 0; start < len(order); {
		end := start + 1
		for end < len(order) && values[order[end]].Cmp(values[order[start]]) == 0 {
			end++
		}
		// positions start+1 .. end are tied, they get their mean.
		avg := float64(start+1+end) / 2
		for _, c := range order[start:end] {
			ranks[c] = avg
		}
		start = end
	}
	return ranks
}

// Names returns the competitor names in column order.
func (t *RankTable) Names() []string { return slices.Clone(t.names) }

// Len returns the number of periods.
func (t *RankTable) Len() int { return len(t.dates) }

// Date returns the date of period i.
func (t *RankTable) Date(i int) date.Date { return t.dates[i] }

// Ranks returns the ranks of period i, in column order.
func (t *RankTable) Ranks(i int) []float64 { return slices.Clone(t.ranks[i]) }

// RankOf returns the rank of competitor name at period i.
func (t *RankTable) RankOf(i int, name string) (float64, bool) {
	c := slices.Index(t.names, name)
	if c < 0 || i < 0 || i >= len(t.ranks) {
		return 0, false
	}
	return t.ranks[i][c], true
}

func (t *RankTable) MarshalJSON() ([]byte, error) {
	type row struct {
		Date   string    `json:"date"`
		Jalali string    `json:"jalali"`
		Ranks  []float64 `json:"ranks"`
	}
	rows := make([]row, len(t.dates))
	for i, on := range t.dates {
		rows[i] = row{Date: on.String(), Jalali: on.Jalali(), Ranks: t.ranks[i]}
	}
	var w jsonObjectWriter
	w.Append("competitors", competitors(t.names))
	w.Append("rows", rows)
	return w.MarshalJSON()
}
