package wealth

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InsufficientDataError reports a window that the series cannot satisfy.
type InsufficientDataError struct {
	Window int // requested rows
	Rows   int // available rows
}

func (e *InsufficientDataError) Error() string {
	if e.Window <= 0 {
		return fmt.Sprintf("insufficient data: window of %d rows is empty", e.Window)
	}
	return fmt.Sprintf("insufficient data: window of %d rows but only %d available", e.Window, e.Rows)
}

// DivisionByZeroError reports a competitor whose baseline value is zero.
type DivisionByZeroError struct {
	Competitor string
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero: %q has a zero baseline value", e.Competitor)
}

// InvalidInvestmentError reports a non positive investment amount.
type InvalidInvestmentError struct {
	Amount decimal.Decimal
}

func (e *InvalidInvestmentError) Error() string {
	return fmt.Sprintf("invalid investment amount %s: must be positive", e.Amount)
}

// UnknownHorizonError reports a horizon outside the offered set.
type UnknownHorizonError struct {
	Value string
}

func (e *UnknownHorizonError) Error() string {
	return fmt.Sprintf("unknown horizon %q", e.Value)
}

// MissingOptionalInputError reports an optional input that is absent.
// It is not fatal: callers skip the feature that needs it.
type MissingOptionalInputError struct {
	Name string
	Err  error
}

func (e *MissingOptionalInputError) Error() string {
	return fmt.Sprintf("optional input %s is missing: %v", e.Name, e.Err)
}

func (e *MissingOptionalInputError) Unwrap() error { return e.Err }
