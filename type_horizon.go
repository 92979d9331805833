package wealth

import (
	"fmt"
	"strings"
)

// Horizon is the committed investment duration of a fee plan, in months.
type Horizon int

const (
	ThreeMonths Horizon = 3
	SixMonths   Horizon = 6
	NineMonths  Horizon = 9
	OneYear     Horizon = 12
)

// Horizons lists the fee horizons in increasing order.
var Horizons = []Horizon{ThreeMonths, SixMonths, NineMonths, OneYear}

// Months returns the number of months of the horizon.
func (h Horizon) Months() int { return int(h) }

// Valid reports whether h is one of the offered fee horizons.
func (h Horizon) Valid() bool { return h.index() >= 0 }

// index returns the column of h in the fee schedule, or -1.
func (h Horizon) index() int {
	switch h {
	case ThreeMonths:
		return 0
	case SixMonths:
		return 1
	case NineMonths:
		return 2
	case OneYear:
		return 3
	default:
		return -1
	}
}

func (h Horizon) String() string {
	switch h {
	case ThreeMonths:
		return "3 months"
	case SixMonths:
		return "6 months"
	case NineMonths:
		return "9 months"
	case OneYear:
		return "1 year"
	default:
		return fmt.Sprintf("%d months", int(h))
	}
}

// Flag returns the short label of h accepted by ParseHorizon, e.g. "6mo".
func (h Horizon) Flag() string {
	if h == OneYear {
		return "1y"
	}
	return fmt.Sprintf("%dmo", int(h))
}

// ParseHorizon parses a fee horizon such as "3mo", "6 months", "9m" or "1y".
func ParseHorizon(s string) (Horizon, error) {
	switch normalizeDuration(s) {
	case "3m":
		return ThreeMonths, nil
	case "6m":
		return SixMonths, nil
	case "9m":
		return NineMonths, nil
	case "12m", "1y":
		return OneYear, nil
	default:
		return 0, &UnknownHorizonError{Value: s}
	}
}

// Window is the chart horizon: the number of most recent weekly observations
// kept from a price series.
type Window int

const (
	OneMonthWindow    Window = 4
	ThreeMonthsWindow Window = 13
	SixMonthsWindow   Window = 26
	OneYearWindow     Window = 52
	TwoYearsWindow    Window = 104
	ThreeYearsWindow  Window = 156
)

// Windows lists the chart horizons in increasing order.
var Windows = []Window{OneMonthWindow, ThreeMonthsWindow, SixMonthsWindow, OneYearWindow, TwoYearsWindow, ThreeYearsWindow}

// Rows returns the number of weekly rows covered by the window.
func (w Window) Rows() int { return int(w) }

func (w Window) String() string {
	switch w {
	case OneMonthWindow:
		return "1 month"
	case ThreeMonthsWindow:
		return "3 months"
	case SixMonthsWindow:
		return "6 months"
	case OneYearWindow:
		return "1 year"
	case TwoYearsWindow:
		return "2 years"
	case ThreeYearsWindow:
		return "3 years"
	default:
		return fmt.Sprintf("%d weeks", int(w))
	}
}

// Flag returns the short label of w accepted by ParseWindow, e.g. "2y".
func (w Window) Flag() string {
	switch w {
	case OneMonthWindow:
		return "1mo"
	case ThreeMonthsWindow:
		return "3mo"
	case SixMonthsWindow:
		return "6mo"
	case OneYearWindow:
		return "1y"
	case TwoYearsWindow:
		return "2y"
	case ThreeYearsWindow:
		return "3y"
	default:
		return fmt.Sprintf("%dw", int(w))
	}
}

// ParseWindow parses a chart horizon such as "1mo", "3 months", "1y" or "3 years".
func ParseWindow(s string) (Window, error) {
	switch normalizeDuration(s) {
	case "1m":
		return OneMonthWindow, nil
	case "3m":
		return ThreeMonthsWindow, nil
	case "6m":
		return SixMonthsWindow, nil
	case "12m", "1y":
		return OneYearWindow, nil
	case "24m", "2y":
		return TwoYearsWindow, nil
	case "36m", "3y":
		return ThreeYearsWindow, nil
	default:
		return 0, &UnknownHorizonError{Value: s}
	}
}

// normalizeDuration reduces "6 months", "6mo", "1 year" or "1yr" to "6m" or "1y".
func normalizeDuration(s string) string {
	s = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	for _, suffix := range []string{"months", "month", "mo"} {
		if n, ok := strings.CutSuffix(s, suffix); ok {
			return n + "m"
		}
	}
	for _, suffix := range []string{"years", "year", "yr"} {
		if n, ok := strings.CutSuffix(s, suffix); ok {
			return n + "y"
		}
	}
	return s
}
