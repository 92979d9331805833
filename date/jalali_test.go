package date

import (
	"testing"
	"time"
)

func TestToJalali(t *testing.T) {
	tests := []struct {
		in   Date
		want string
	}{
		{New(2020, time.March, 20), "1399/01/01"},
		{New(2023, time.March, 21), "1402/01/01"},
		{New(2024, time.March, 19), "1402/12/29"},
		{New(2024, time.March, 20), "1403/01/01"},
		{New(2025, time.March, 20), "1403/12/30"},
		{New(2025, time.March, 21), "1404/01/01"},
		{New(2024, time.December, 31), "1403/10/11"},
		{New(2000, time.January, 1), "1378/10/11"},
		{New(2025, time.July, 1), "1404/04/10"},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			if got := tt.in.Jalali(); got != tt.want {
				t.Errorf("Jalali() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJalaliRoundTrip(t *testing.T) {
	from, to := New(2000, time.January, 1), New(2040, time.December, 31)
	prev := ToJalali(from.Add(-1))
	for d := from; !d.After(to); d = d.Add(1) {
		j := ToJalali(d)
		if !j.Valid() {
			t.Fatalf("ToJalali(%v) = %v is not a valid day", d, j)
		}
		if got := FromJalali(j); got != d {
			t.Fatalf("FromJalali(ToJalali(%v)) = %v", d, got)
		}
		// labels sort like the days they name
		if j.String() <= prev.String() {
			t.Fatalf("ToJalali(%v) = %v does not follow %v", d, j, prev)
		}
		prev = j
	}
}

func TestIsLeap(t *testing.T) {
	for _, y := range []int{1395, 1399, 1403, 1408} {
		if !IsLeap(y) {
			t.Errorf("IsLeap(%d) = false, want true", y)
		}
	}
	for _, y := range []int{1400, 1401, 1402, 1404} {
		if IsLeap(y) {
			t.Errorf("IsLeap(%d) = true, want false", y)
		}
	}
}

func TestParseJalali(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "1403/01/01", want: New(2024, time.March, 20)},
		{in: "1403/12/30", want: New(2025, time.March, 20)},
		{in: "1402/12/30", wantErr: true},
		{in: "1403/13/01", wantErr: true},
		{in: "2025-03-20", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseJalali(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseJalali(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseJalali(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLeapCycle(t *testing.T) {
	// leap years sit at these positions of the 33 year cycle
	leap := map[int]bool{1: true, 5: true, 9: true, 13: true, 17: true, 22: true, 26: true, 30: true}
	for y := 1350; y <= 1450; y++ {
		if got := IsLeap(y); got != leap[y%33] {
			t.Errorf("IsLeap(%d) = %v, want %v", y, got, leap[y%33])
		}
	}
}
