package wealth

import "github.com/shopspring/decimal"

// Tier is the investment-amount band that determines the fee rate.
type Tier int

const (
	Tier1 Tier = iota + 1 // up to 50 million
	Tier2                 // up to 250 million
	Tier3                 // up to 500 million
	Tier4                 // up to 1000 million
	Tier5                 // above 1000 million
)

// Tiers lists the tiers in increasing amount order.
var Tiers = []Tier{Tier1, Tier2, Tier3, Tier4, Tier5}

// tierBands holds the inclusive upper bound of each tier but the last, in order.
var tierBands = []struct {
	tier Tier
	upTo decimal.Decimal
}{
	{Tier1, decimal.NewFromInt(50)},
	{Tier2, decimal.NewFromInt(250)},
	{Tier3, decimal.NewFromInt(500)},
	{Tier4, decimal.NewFromInt(1000)},
}

// Classify returns the tier of an amount expressed in millions.
func Classify(amount decimal.Decimal) Tier {
	for _, b := range tierBands {
		if amount.LessThanOrEqual(b.upTo) {
			return b.tier
		}
	}
	return Tier5
}

// Valid reports whether t is one of the five tiers.
func (t Tier) Valid() bool { return t >= Tier1 && t <= Tier5 }

// String returns the band label, e.g. "≤250".
func (t Tier) String() string {
	switch t {
	case Tier1:
		return "≤50"
	case Tier2:
		return "≤250"
	case Tier3:
		return "≤500"
	case Tier4:
		return "≤1000"
	case Tier5:
		return ">1000"
	default:
		return "unknown"
	}
}

func (t Tier) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
