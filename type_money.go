package wealth

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Toman is the currency code used for every amount displayed by the dashboard.
//
// Toman is not an ISO 4217 currency (it is ten Iranian rials), so it is
// registered with go-money once, at package initialization.
const Toman = "TMN"

var _ = money.AddCurrency(Toman, "Toman", "1 $", ".", ",", 0)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// Millions converts an amount expressed in millions of Toman into Toman Money.
func Millions(amount decimal.Decimal) Money { return M(amount.Mul(million), Toman) }

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value.Round(int32(m.currency().Fraction)))
	return w.MarshalJSON()
}
