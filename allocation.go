package wealth

import (
	"fmt"

	"github.com/datavest/wealth/date"
	"github.com/shopspring/decimal"
)

// Allocation is the optional table of weekly fund allocations.
//
// Its columns are unnamed in the source file, they are called fund_1 to
// fund_N in column order.
type Allocation struct {
	Funds  []string
	Labels []string // first column of the file, as written
	Rows   [][]decimal.Decimal
}

// fundNames returns fund_1 .. fund_n.
func fundNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("fund_%d", i+1)
	}
	return names
}

// AlignedAllocation is an Allocation relabelled with the dates of a wealth table.
type AlignedAllocation struct {
	Funds []string
	Dates []date.Date
	Rows  [][]decimal.Decimal
}

// Align keeps the last w.Len() rows of a and labels them with the dates of w.
func (a *Allocation) Align(w *WealthTable) (*AlignedAllocation, error) {
	n := w.Len()
	if n > len(a.Rows) {
		return nil, &InsufficientDataError{Window: n, Rows: len(a.Rows)}
	}
	return &AlignedAllocation{
		Funds: a.Funds,
		Dates: w.Dates(),
		Rows:  a.Rows[len(a.Rows)-n:],
	}, nil
}

func (a *AlignedAllocation) MarshalJSON() ([]byte, error) {
	rows := make([]Row, len(a.Rows))
	for i, values := range a.Rows {
		rows[i] = Row{On: a.Dates[i], Values: values}
	}
	var w jsonObjectWriter
	w.Append("funds", a.Funds)
	w.Append("rows", jsonRows(rows))
	return w.MarshalJSON()
}
