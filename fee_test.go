package wealth

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		amount decimal.Decimal
		want   Tier
	}{
		{D(0.5), Tier1},
		{D(50), Tier1},
		{D(50.01), Tier2},
		{D(250), Tier2},
		{D(251), Tier3},
		{D(500), Tier3},
		{D(600), Tier4},
		{D(1000), Tier4},
		{D(1000.5), Tier5},
		{D(1_000_000), Tier5},
	}
	for _, tt := range tests {
		t.Run(tt.amount.String(), func(t *testing.T) {
			if got := Classify(tt.amount); got != tt.want {
				t.Errorf("Classify(%s) = %v, want %v", tt.amount, got, tt.want)
			}
		})
	}
}

func TestRate(t *testing.T) {
	want := map[Tier][4]string{
		Tier1: {"2.0", "2.5", "3.0", "3.5"},
		Tier2: {"1.8", "2.3", "2.8", "3.3"},
		Tier3: {"1.5", "2.2", "2.7", "3.1"},
		Tier4: {"1.2", "2.0", "2.6", "3.0"},
		Tier5: {"1.0", "1.8", "2.5", "2.9"},
	}
	for _, tier := range Tiers {
		for i, h := range Horizons {
			got, err := Rate(tier, h)
			if err != nil {
				t.Fatalf("Rate(%v, %v) unexpected error: %v", tier, h, err)
			}
			if w := decimal.RequireFromString(want[tier][i]); !got.Equal(w) {
				t.Errorf("Rate(%v, %v) = %s, want %s", tier, h, got, w)
			}
		}
	}
}

func TestQuoteRateMatchesSchedule(t *testing.T) {
	// one representative amount per tier
	amounts := map[Tier]decimal.Decimal{Tier1: D(10), Tier2: D(100), Tier3: D(300), Tier4: D(700), Tier5: D(2000)}
	for tier, amount := range amounts {
		for _, h := range Horizons {
			q, err := NewQuote(amount, h)
			if err != nil {
				t.Fatalf("NewQuote(%s, %v) unexpected error: %v", amount, h, err)
			}
			rate, _ := Rate(tier, h)
			if q.Tier != tier || !q.Rate.Equal(rate) {
				t.Errorf("NewQuote(%s, %v) = tier %v rate %s, want tier %v rate %s", amount, h, q.Tier, q.Rate, tier, rate)
			}
		}
	}
}

func TestInstallments(t *testing.T) {
	tests := []struct {
		tier Tier
		h    Horizon
		want int
	}{
		{Tier5, ThreeMonths, 1},
		{Tier3, ThreeMonths, 1},
		{Tier1, SixMonths, 1},
		{Tier2, OneYear, 1},
		{Tier3, SixMonths, 2},
		{Tier3, NineMonths, 2},
		{Tier4, SixMonths, 3},
		{Tier5, OneYear, 3},
	}
	for _, tt := range tests {
		if got := Installments(tt.tier, tt.h); got != tt.want {
			t.Errorf("Installments(%v, %v) = %d, want %d", tt.tier, tt.h, got, tt.want)
		}
	}
}

func TestNewQuote(t *testing.T) {
	tests := []struct {
		name           string
		amount         decimal.Decimal
		h              Horizon
		tier           Tier
		rate           string
		totalFee       string
		installments   int
		perInstallment string
		payable        string
	}{
		{
			name:   "100 over 3 months",
			amount: D(100), h: ThreeMonths,
			tier: Tier2, rate: "1.8", totalFee: "1.8",
			installments: 1, perInstallment: "1.8", payable: "1.8",
		},
		{
			name:   "600 over 1 year",
			amount: D(600), h: OneYear,
			tier: Tier4, rate: "3.0", totalFee: "18",
			installments: 3, perInstallment: "6.3", payable: "18.9",
		},
		{
			name:   "50 over 6 months",
			amount: D(50), h: SixMonths,
			tier: Tier1, rate: "2.5", totalFee: "1.25",
			installments: 1, perInstallment: "1.25", payable: "1.25",
		},
		{
			name:   "400 over 9 months",
			amount: D(400), h: NineMonths,
			tier: Tier3, rate: "2.7", totalFee: "10.8",
			installments: 2, perInstallment: "5.67", payable: "11.34",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuote(tt.amount, tt.h)
			if err != nil {
				t.Fatalf("NewQuote() unexpected error: %v", err)
			}
			if q.Tier != tt.tier {
				t.Errorf("Tier = %v, want %v", q.Tier, tt.tier)
			}
			if q.Installments != tt.installments {
				t.Errorf("Installments = %d, want %d", q.Installments, tt.installments)
			}
			checks := []struct {
				field string
				got   decimal.Decimal
				want  string
			}{
				{"Rate", q.Rate, tt.rate},
				{"TotalFee", q.TotalFee, tt.totalFee},
				{"PerInstallment", q.PerInstallment, tt.perInstallment},
				{"Payable", q.Payable, tt.payable},
			}
			for _, c := range checks {
				if w := decimal.RequireFromString(c.want); !c.got.Equal(w) {
					t.Errorf("%s = %s, want %s", c.field, c.got, w)
				}
			}
		})
	}
}

func TestInstallmentSurchargeLaw(t *testing.T) {
	tolerance := decimal.New(1, -9)
	for _, amount := range []decimal.Decimal{D(251), D(333.33), D(499.99), D(777), D(1234.567), D(99999)} {
		for _, h := range Horizons {
			q, err := NewQuote(amount, h)
			if err != nil {
				t.Fatal(err)
			}
			if q.Installments == 1 {
				if !q.Surcharge.IsZero() || !q.PerInstallment.Equal(q.TotalFee) {
					t.Errorf("NewQuote(%s, %v): single payment must not be surcharged: %+v", amount, h, q)
				}
				continue
			}
			got := q.PerInstallment.Mul(decimal.NewFromInt(int64(q.Installments)))
			want := q.TotalFee.Mul(decimal.RequireFromString("1.05"))
			if got.Sub(want).Abs().GreaterThan(tolerance) {
				t.Errorf("NewQuote(%s, %v): %s * %d = %s, want %s", amount, h, q.PerInstallment, q.Installments, got, want)
			}
		}
	}
}

func TestMonthlyComparison(t *testing.T) {
	q, err := NewQuote(D(600), OneYear)
	if err != nil {
		t.Fatal(err)
	}
	// 1.2% of 600 over 3 months against 3.0% of 600 over 12 months.
	if want := D(2.4); !q.ReferenceMonthlyFee.Equal(want) {
		t.Errorf("ReferenceMonthlyFee = %s, want %s", q.ReferenceMonthlyFee, want)
	}
	if want := D(1.5); !q.MonthlyFee.Equal(want) {
		t.Errorf("MonthlyFee = %s, want %s", q.MonthlyFee, want)
	}
	if want := D(0.9); !q.Savings.Equal(want) {
		t.Errorf("Savings = %s, want %s", q.Savings, want)
	}
	if want := Percent(37.5); !q.SavingsPercent.Equal(want) {
		t.Errorf("SavingsPercent = %v, want %v", q.SavingsPercent, want)
	}

	q, err = NewQuote(D(100), ThreeMonths)
	if err != nil {
		t.Fatal(err)
	}
	if q.HasComparison() || !q.Savings.IsZero() || q.SavingsPercent != 0 {
		t.Errorf("three month quote must not be compared: %+v", q)
	}
	if !q.MonthlyFee.Equal(q.ReferenceMonthlyFee) {
		t.Errorf("MonthlyFee = %s, want the reference %s", q.MonthlyFee, q.ReferenceMonthlyFee)
	}
}

func TestNewQuoteErrors(t *testing.T) {
	for _, amount := range []decimal.Decimal{D(0), D(-10)} {
		_, err := NewQuote(amount, ThreeMonths)
		var invalid *InvalidInvestmentError
		if !errors.As(err, &invalid) {
			t.Errorf("NewQuote(%s) error = %v, want InvalidInvestmentError", amount, err)
		}
	}
	for _, h := range []Horizon{0, 1, 5, 24} {
		_, err := NewQuote(D(100), h)
		var unknown *UnknownHorizonError
		if !errors.As(err, &unknown) {
			t.Errorf("NewQuote(100, %d) error = %v, want UnknownHorizonError", int(h), err)
		}
	}
}

func TestParseHorizon(t *testing.T) {
	tests := []struct {
		in   string
		want Horizon
	}{
		{"3mo", ThreeMonths},
		{"3 months", ThreeMonths},
		{"6m", SixMonths},
		{"9 Months", NineMonths},
		{"1 year", OneYear},
		{"1yr", OneYear},
		{"12mo", OneYear},
	}
	for _, tt := range tests {
		got, err := ParseHorizon(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseHorizon(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	for _, in := range []string{"1mo", "2 years", "", "soon"} {
		_, err := ParseHorizon(in)
		var unknown *UnknownHorizonError
		if !errors.As(err, &unknown) {
			t.Errorf("ParseHorizon(%q) error = %v, want UnknownHorizonError", in, err)
		}
	}
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		in   string
		want Window
	}{
		{"1 month", OneMonthWindow},
		{"3mo", ThreeMonthsWindow},
		{"6 months", SixMonthsWindow},
		{"1y", OneYearWindow},
		{"2 years", TwoYearsWindow},
		{"3yr", ThreeYearsWindow},
	}
	for _, tt := range tests {
		got, err := ParseWindow(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseWindow(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseWindow("9 months"); err == nil {
		t.Error("ParseWindow(9 months) should fail")
	}
}

func TestFlagLabelsParse(t *testing.T) {
	for _, h := range Horizons {
		if got, err := ParseHorizon(h.Flag()); err != nil || got != h {
			t.Errorf("ParseHorizon(%q) = %v, %v, want %v", h.Flag(), got, err, h)
		}
	}
	for _, w := range Windows {
		if got, err := ParseWindow(w.Flag()); err != nil || got != w {
			t.Errorf("ParseWindow(%q) = %v, %v, want %v", w.Flag(), got, err, w)
		}
	}
}
