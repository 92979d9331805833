package date

import "fmt"

// Range represents a range of dates.
type Range struct{ From, To Date }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// Days returns the number of days covered by the range, boundaries included.
func (r Range) Days() int {
	if r.To.Before(r.From) {
		return 0
	}
	return r.To.Sub(r.From) + 1
}

// String formats the range with both calendars.
func (r Range) String() string {
	return fmt.Sprintf("%s to %s (%s to %s)", r.From, r.To, r.From.Jalali(), r.To.Jalali())
}
