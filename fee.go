package wealth

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// pct returns a rate given in tenths of a percent.
func pct(tenths int64) decimal.Decimal { return decimal.New(tenths, -1) }

// feeSchedule holds the fee rates in percent, by tier then horizon column
// (3, 6, 9 and 12 months). It is never modified.
var feeSchedule = [5][4]decimal.Decimal{
	{pct(20), pct(25), pct(30), pct(35)}, // ≤50
	{pct(18), pct(23), pct(28), pct(33)}, // ≤250
	{pct(15), pct(22), pct(27), pct(31)}, // ≤500
	{pct(12), pct(20), pct(26), pct(30)}, // ≤1000
	{pct(10), pct(18), pct(25), pct(29)}, // >1000
}

// installmentSurcharge is applied to the total fee when it is split.
var installmentSurcharge = decimal.New(105, -2)

// Rate returns the fee rate, in percent, for a tier and a horizon.
func Rate(t Tier, h Horizon) (decimal.Decimal, error) {
	if !t.Valid() {
		return zero, fmt.Errorf("unknown tier %d", int(t))
	}
	if !h.Valid() {
		return zero, &UnknownHorizonError{Value: h.String()}
	}
	return feeSchedule[t-1][h.index()], nil
}

// Installments returns the number of payments of the fee.
//
// Three-month plans are paid at once. Longer plans are split in two for the
// ≤500 tier and in three above it.
func Installments(t Tier, h Horizon) int {
	if h == ThreeMonths {
		return 1
	}
	switch t {
	case Tier3:
		return 2
	case Tier4, Tier5:
		return 3
	default:
		return 1
	}
}

// Quote is the fee breakdown for an investment amount and a horizon.
// All amounts are in millions of Toman, like the investment.
type Quote struct {
	Amount  decimal.Decimal
	Tier    Tier
	Horizon Horizon
	Rate    decimal.Decimal // percent

	TotalFee       decimal.Decimal // Amount * Rate / 100
	Installments   int
	Surcharge      decimal.Decimal // zero for a single payment
	Payable        decimal.Decimal // TotalFee + Surcharge
	PerInstallment decimal.Decimal // Payable / Installments

	MonthlyFee          decimal.Decimal // TotalFee spread over the horizon
	ReferenceMonthlyFee decimal.Decimal // same tier, three-month plan
	Savings             decimal.Decimal // per month, against the reference
	SavingsPercent      Percent
}

// NewQuote computes the fee quote of investing amount (in millions) over h.
func NewQuote(amount decimal.Decimal, h Horizon) (*Quote, error) {
	if !amount.IsPositive() {
		return nil, &InvalidInvestmentError{Amount: amount}
	}
	if !h.Valid() {
		return nil, &UnknownHorizonError{Value: h.String()}
	}
	tier := Classify(amount)
	// tier and h are valid here, the schedule can be indexed directly.
	rate := feeSchedule[tier-1][h.index()]
	reference := feeSchedule[tier-1][ThreeMonths.index()]

	q := &Quote{
		Amount:       amount,
		Tier:         tier,
		Horizon:      h,
		Rate:         rate,
		TotalFee:     amount.Mul(rate).Div(hundred),
		Installments: Installments(tier, h),
		Surcharge:    zero,
	}
	q.Payable = q.TotalFee
	if q.Installments > 1 {
		q.Payable = q.TotalFee.Mul(installmentSurcharge)
		q.Surcharge = q.Payable.Sub(q.TotalFee)
	}
	q.PerInstallment = q.Payable.Div(decimal.NewFromInt(int64(q.Installments)))

	q.ReferenceMonthlyFee = amount.Mul(reference).Div(hundred).Div(decimal.NewFromInt(int64(ThreeMonths.Months())))
	q.MonthlyFee = q.TotalFee.Div(decimal.NewFromInt(int64(h.Months())))
	q.Savings = zero
	if q.HasComparison() {
		q.Savings = q.ReferenceMonthlyFee.Sub(q.MonthlyFee)
		q.SavingsPercent = percentOf(q.Savings.Div(q.ReferenceMonthlyFee).Mul(hundred))
	}
	return q, nil
}

// HasComparison reports whether the quote is compared to the three-month plan.
func (q *Quote) HasComparison() bool { return q.Horizon != ThreeMonths }

func (q *Quote) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", q.Amount)
	w.Append("tier", q.Tier)
	w.Append("horizon", q.Horizon.Months())
	w.Append("rate", q.Rate)
	w.Append("totalFee", q.TotalFee)
	w.Append("installments", q.Installments)
	if !q.Surcharge.IsZero() {
		w.Append("surcharge", q.Surcharge)
	}
	w.Append("payable", q.Payable)
	w.Append("perInstallment", q.PerInstallment)
	w.Append("monthlyFee", q.MonthlyFee)
	w.Append("referenceMonthlyFee", q.ReferenceMonthlyFee)
	if q.HasComparison() {
		w.Append("savings", q.Savings)
		w.Append("savingsPercent", float64(q.SavingsPercent))
	}
	return w.MarshalJSON()
}
