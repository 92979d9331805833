package wealth

import (
	"github.com/shopspring/decimal"
)

// WealthTable is the growth of an initial investment in each competitor.
// It has the shape of the window it was computed from, and its first row
// equals the initial investment for every competitor.
type WealthTable struct {
	*Series
	Initial decimal.Decimal // in millions
}

// Normalize rescales the last window rows of s so that every column starts
// at initial.
//
// Each value is divided by the first value of its column, then multiplied by
// initial. It fails with an InsufficientDataError if the window is empty or
// longer than s, and with a DivisionByZeroError if a column starts at zero.
func Normalize(s *Series, window int, initial decimal.Decimal) (*WealthTable, error) {
	tail, err := s.Tail(window)
	if err != nil {
		return nil, err
	}
	base, err := tail.baseline()
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, tail.Len())
	for on, values := range tail.Rows() {
		wealth := make([]decimal.Decimal, len(values))
		for c, v := range values {
			wealth[c] = v.Div(base[c]).Mul(initial)
		}
		rows = append(rows, Row{On: on, Values: wealth})
	}
	return &WealthTable{Series: &Series{names: tail.names, rows: rows}, Initial: initial}, nil
}

func (w *WealthTable) MarshalJSON() ([]byte, error) {
	var j jsonObjectWriter
	j.Append("initial", w.Initial)
	j.Append("competitors", competitors(w.names))
	j.Append("rows", jsonRows(w.rows))
	return j.MarshalJSON()
}

// Return is the cumulative return of a competitor over a window.
type Return struct {
	Competitor string
	Return     Percent
}

// CumulativeReturns returns, for each competitor in column order, the
// percentage change between the first and the last row of the window.
func CumulativeReturns(s *Series, window int) ([]Return, error) {
	tail, err := s.Tail(window)
	if err != nil {
		return nil, err
	}
	base, err := tail.baseline()
	if err != nil {
		return nil, err
	}
	last := tail.rows[tail.Len()-1].Values
	returns := make([]Return, len(base))
	for c, b := range base {
		r := last[c].Div(b).Sub(decimal.NewFromInt(1)).Mul(hundred)
		returns[c] = Return{Competitor: tail.names[c], Return: percentOf(r)}
	}
	return returns, nil
}

func (r Return) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("competitor", r.Competitor)
	w.Append("return", float64(r.Return))
	return w.MarshalJSON()
}

// competitors describes the columns with their display color.
func competitors(names []string) []map[string]string {
	res := make([]map[string]string, len(names))
	for i, n := range names {
		res[i] = map[string]string{"name": n, "color": Color(i)}
	}
	return res
}

type jsonRow struct {
	Date   string            `json:"date"`
	Jalali string            `json:"jalali"`
	Values []decimal.Decimal `json:"values"`
}

func jsonRows(rows []Row) []jsonRow {
	res := make([]jsonRow, len(rows))
	for i, r := range rows {
		res[i] = jsonRow{Date: r.On.String(), Jalali: r.On.Jalali(), Values: r.Values}
	}
	return res
}
