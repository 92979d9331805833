package renderer

import (
	"bytes"
	"fmt"

	"github.com/datavest/wealth"
	md "github.com/nao1215/markdown"
)

// Dashboard gathers every section of the report. Allocation and Quote are
// optional.
type Dashboard struct {
	Window     wealth.Window
	Wealth     *wealth.WealthTable
	Ranks      *wealth.RankTable
	Returns    []wealth.Return
	Allocation *wealth.AlignedAllocation
	Quote      *wealth.Quote
}

// DashboardMarkdown renders the whole dashboard.
func DashboardMarkdown(d *Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("DataVest Wealth Management Dashboard")
	if d.Wealth != nil {
		doc.PlainText(fmt.Sprintf("Investment horizon: %s, %s.", d.Window, d.Wealth.Range()))
		legend(doc, d.Wealth.Names())
		writeWealth(doc, d.Wealth)
	}
	if d.Ranks != nil {
		writeRanks(doc, d.Ranks)
	}
	if d.Returns != nil {
		writeReturns(doc, d.Returns)
	}
	if d.Allocation != nil {
		writeAllocation(doc, d.Allocation)
	}
	if d.Quote != nil {
		writeQuote(doc, d.Quote)
	}
	return doc.String()
}
