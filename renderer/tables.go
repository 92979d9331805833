// Package renderer builds the markdown documents of the dashboard.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/datavest/wealth"
	"github.com/datavest/wealth/date"
	md "github.com/nao1215/markdown"
)

// dateHeader labels the first two columns of dated tables.
var dateHeader = []string{"Date (Shamsi)", "Date"}

// dateCells returns the Jalali and ISO labels of a row.
func dateCells(on date.Date) []string { return []string{on.Jalali(), on.String()} }

// alignment returns left aligned date columns followed by n right aligned ones.
func alignment(n int) []md.TableAlignment {
	a := []md.TableAlignment{md.AlignLeft, md.AlignLeft}
	for range n {
		a = append(a, md.AlignRight)
	}
	return a
}

// legend writes the competitor colors.
func legend(doc *md.Markdown, names []string) {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Competitor", "Color"},
	}
	for i, n := range names {
		table.Rows = append(table.Rows, []string{n, wealth.Color(i)})
	}
	doc.Table(table)
}

// WealthMarkdown renders the wealth index table in Toman.
func WealthMarkdown(w *wealth.WealthTable) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	writeWealth(doc, w)
	return doc.String()
}

func writeWealth(doc *md.Markdown, w *wealth.WealthTable) {
	names := w.Names()
	doc.H2("Wealth Index Comparison")
	doc.PlainText(fmt.Sprintf("Growth of %s invested on %s (%s).",
		wealth.Millions(w.Initial), w.Date(0).Jalali(), w.Date(0)))

	table := md.TableSet{
		Alignment: alignment(len(names)),
		Header:    append(dateHeader[:2:2], names...),
	}
	for on, values := range w.Rows() {
		cells := dateCells(on)
		for _, v := range values {
			cells = append(cells, wealth.Millions(v).String())
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)
}

// RankMarkdown renders the per-period ranking, 1 being the best.
func RankMarkdown(r *wealth.RankTable) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	writeRanks(doc, r)
	return doc.String()
}

func writeRanks(doc *md.Markdown, r *wealth.RankTable) {
	names := r.Names()
	doc.H2("Weekly Competitor Rankings")

	table := md.TableSet{
		Alignment: alignment(len(names)),
		Header:    append(dateHeader[:2:2], names...),
	}
	for i := range r.Len() {
		cells := dateCells(r.Date(i))
		for _, rank := range r.Ranks(i) {
			cells = append(cells, strconv.FormatFloat(rank, 'f', -1, 64))
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)
}

// ReturnsMarkdown renders the end-of-period cumulative returns.
func ReturnsMarkdown(returns []wealth.Return) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	writeReturns(doc, returns)
	return doc.String()
}

func writeReturns(doc *md.Markdown, returns []wealth.Return) {
	doc.H2("End-of-Period Cumulative Return")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Competitor", "Return", "Color"},
	}
	for i, r := range returns {
		table.Rows = append(table.Rows, []string{r.Competitor, r.Return.SignedString(), wealth.Color(i)})
	}
	doc.Table(table)
}

// AllocationMarkdown renders the weekly fund allocation.
func AllocationMarkdown(a *wealth.AlignedAllocation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	writeAllocation(doc, a)
	return doc.String()
}

func writeAllocation(doc *md.Markdown, a *wealth.AlignedAllocation) {
	doc.H2("Investment Allocation by Week")
	table := md.TableSet{
		Alignment: alignment(len(a.Funds)),
		Header:    append(dateHeader[:2:2], a.Funds...),
	}
	for i, values := range a.Rows {
		cells := dateCells(a.Dates[i])
		for _, v := range values {
			cells = append(cells, v.String())
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)
}
