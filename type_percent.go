package wealth

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Percent float64

// percentOf converts a decimal percentage into a Percent.
func percentOf(d decimal.Decimal) Percent { return Percent(d.InexactFloat64()) }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
