package date

import (
	"fmt"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Jalali is a day in the Solar Hijri calendar.
//
// Conversions follow the arithmetic 33-year leap cycle of ptime and are a
// bijection: FromJalali(ToJalali(d)) == d for every Date d, and
// ToJalali(FromJalali(j)) == j for every valid Jalali j.
type Jalali struct {
	Year  int
	Month int // 1 (Farvardin) to 12 (Esfand)
	Day   int
}

// ToJalali projects d in the Solar Hijri calendar.
func ToJalali(d Date) Jalali {
	p := ptime.New(d.time())
	return Jalali{Year: p.Year(), Month: int(p.Month()), Day: p.Day()}
}

// FromJalali returns the Gregorian Date of j.
func FromJalali(j Jalali) Date {
	t := ptime.Date(j.Year, ptime.Month(j.Month), j.Day, 12, 0, 0, 0, time.UTC).Time()
	return New(t.Date())
}

// IsLeap reports whether the Jalali year has 366 days.
func IsLeap(year int) bool {
	return FromJalali(Jalali{Year: year + 1, Month: 1, Day: 1}).Sub(FromJalali(Jalali{Year: year, Month: 1, Day: 1})) == 366
}

// daysIn returns the number of days in the Jalali month.
func daysIn(year, month int) int {
	switch {
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	case IsLeap(year):
		return 30
	default:
		return 29
	}
}

// Valid reports whether j is a day that exists in the Solar Hijri calendar.
func (j Jalali) Valid() bool {
	return j.Month >= 1 && j.Month <= 12 && j.Day >= 1 && j.Day <= daysIn(j.Year, j.Month)
}

// String formats j as YYYY/MM/DD.
func (j Jalali) String() string { return fmt.Sprintf("%04d/%02d/%02d", j.Year, j.Month, j.Day) }

// ParseJalali parses a YYYY/MM/DD Jalali label back to a Gregorian Date.
func ParseJalali(str string) (Date, error) {
	var j Jalali
	if _, err := fmt.Sscanf(str, "%d/%d/%d", &j.Year, &j.Month, &j.Day); err != nil {
		return Date{}, fmt.Errorf("invalid jalali date %q want format YYYY/MM/DD: %w", str, err)
	}
	if !j.Valid() {
		return Date{}, fmt.Errorf("invalid jalali date %q: no such day", str)
	}
	return FromJalali(j), nil
}
