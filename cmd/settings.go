package cmd

import (
	"cmp"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/datavest/wealth"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Settings holds the inputs of the dashboard.
type Settings struct {
	Prices            string
	Allocation        string
	InitialInvestment float64 // millions of Toman
	Horizon           string
	Fee               struct {
		Investment float64 // millions of Toman
		Horizon    string
	}
}

// settingsFile is the YAML layout of the settings file. Amounts are pointers
// so that an explicit zero is kept, and rejected later, instead of defaulted.
type settingsFile struct {
	Prices            string   `yaml:"prices"`
	Allocation        string   `yaml:"allocation"`
	InitialInvestment *float64 `yaml:"initial_investment"`
	Horizon           string   `yaml:"horizon"`
	Fee               struct {
		Investment *float64 `yaml:"investment"`
		Horizon    string   `yaml:"horizon"`
	} `yaml:"fee"`
}

// ReadSettings reads settings from a YAML file, then applies environment
// variable overrides and defaults. A missing file is not an error.
func ReadSettings(path string) (*Settings, error) {
	var file settingsFile

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse settings %q: %w", path, err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DATAVEST_PRICES"); v != "" {
		file.Prices = v
	}
	if v := os.Getenv("DATAVEST_ALLOCATION"); v != "" {
		file.Allocation = v
	}
	if v := os.Getenv("DATAVEST_INITIAL_INVESTMENT"); v != "" {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DATAVEST_INITIAL_INVESTMENT %q: %w", v, err)
		}
		file.InitialInvestment = &amount
	}
	if v := os.Getenv("DATAVEST_HORIZON"); v != "" {
		file.Horizon = v
	}

	// Defaults
	s := &Settings{
		Prices:            cmp.Or(file.Prices, "compare_ret.csv"),
		Allocation:        cmp.Or(file.Allocation, "R.csv"),
		InitialInvestment: orDefault(file.InitialInvestment, 100),
		Horizon:           cmp.Or(file.Horizon, "3mo"),
	}
	s.Fee.Investment = orDefault(file.Fee.Investment, 100)
	s.Fee.Horizon = cmp.Or(file.Fee.Horizon, "3mo")
	return s, nil
}

// orDefault returns *v, or def when v is not set.
func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// isSet reports whether the flag name was passed on the command line.
func isSet(f *flag.FlagSet, name string) bool {
	set := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

// chartFlags are the flags shared by the commands that read the price file.
type chartFlags struct {
	initial float64
	horizon string
}

func (c *chartFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.initial, "i", 0, "Initial investment in millions of Toman (defaults to the settings)")
	f.StringVar(&c.horizon, "horizon", "", "Investment horizon: 1mo, 3mo, 6mo, 1y, 2y or 3y (defaults to the settings)")
}

// chart is the resolved input of a chart command.
type chart struct {
	settings *Settings
	series   *wealth.Series
	window   wealth.Window
	initial  decimal.Decimal
}

// load resolves the flags passed in f against the settings and loads the
// price file.
func (c *chartFlags) load(f *flag.FlagSet) (*chart, error) {
	s, err := LoadSettings()
	if err != nil {
		return nil, err
	}
	if isSet(f, "horizon") {
		s.Horizon = c.horizon
	}
	if isSet(f, "i") {
		s.InitialInvestment = c.initial
	}
	window, err := wealth.ParseWindow(s.Horizon)
	if err != nil {
		return nil, err
	}
	initial := wealth.D(s.InitialInvestment)
	if !initial.IsPositive() {
		return nil, &wealth.InvalidInvestmentError{Amount: initial}
	}
	series, err := wealth.LoadSeries(s.Prices)
	if err != nil {
		return nil, err
	}
	return &chart{settings: s, series: series, window: window, initial: initial}, nil
}
