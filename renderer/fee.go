package renderer

import (
	"bytes"
	"fmt"

	"github.com/datavest/wealth"
	md "github.com/nao1215/markdown"
)

// QuoteMarkdown renders a fee quote with its payment plan and the monthly
// comparison against the three-month plan.
func QuoteMarkdown(q *wealth.Quote) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	writeQuote(doc, q)
	return doc.String()
}

func writeQuote(doc *md.Markdown, q *wealth.Quote) {
	doc.H2("Fee Calculator")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Item", "Value"},
		Rows: [][]string{
			{"Investment", wealth.Millions(q.Amount).String()},
			{"Horizon", q.Horizon.String()},
			{"Tier", q.Tier.String()},
			{"Fee Rate", q.Rate.StringFixed(2) + "%"},
			{"Total Fee", wealth.Millions(q.TotalFee).String()},
		},
	}
	doc.Table(table)

	if q.Installments > 1 {
		doc.PlainText(fmt.Sprintf("**Payment Plan:** %d installments of %s each (%s including the %s surcharge).",
			q.Installments, wealth.Millions(q.PerInstallment), wealth.Millions(q.Payable), wealth.Millions(q.Surcharge)))
	} else {
		doc.PlainText(fmt.Sprintf("**Payment Plan:** a single payment of %s.", wealth.Millions(q.Payable)))
	}

	if !q.HasComparison() {
		return
	}
	doc.BulletList(
		fmt.Sprintf("Monthly Fee: %s vs %s in the 3 months plan", wealth.Millions(q.MonthlyFee), wealth.Millions(q.ReferenceMonthlyFee)),
		fmt.Sprintf("Save %s per month (%.1f%% less per month) with the %s plan", wealth.Millions(q.Savings), float64(q.SavingsPercent), q.Horizon),
	)
}
