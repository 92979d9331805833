package wealth

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/datavest/wealth/date"
	"github.com/shopspring/decimal"
)

// DecodeSeries reads a price series from CSV.
//
// The header row names the competitors, its first cell (the date column) is
// ignored. Each following row starts with a date and holds one price per
// competitor. Rows must be in strictly increasing date order.
func DecodeSeries(r io.Reader) (*Series, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty price file")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("header has %d columns, want a date column and at least one competitor", len(header))
	}
	names := make([]string, len(header)-1)
	for i, h := range header[1:] {
		names[i] = strings.TrimSpace(h)
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		on, err := parseDateCell(rec[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		values, err := parseDecimals(rec[1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, Row{On: on, Values: values})
	}
	return NewSeries(names, rows...)
}

// DecodeAllocation reads an allocation table from a header-less CSV.
// The first column labels the rows, the others are renamed fund_1..fund_N.
func DecodeAllocation(r io.Reader) (*Allocation, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	a := &Allocation{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		if len(rec) < 2 {
			return nil, fmt.Errorf("line %d: want a label and at least one fund", line)
		}
		values, err := parseDecimals(rec[1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		a.Labels = append(a.Labels, strings.TrimSpace(rec[0]))
		a.Rows = append(a.Rows, values)
	}
	if len(a.Rows) == 0 {
		return nil, errors.New("empty allocation file")
	}
	a.Funds = fundNames(len(a.Rows[0]))
	return a, nil
}

// LoadSeries decodes the price series stored in the named file.
func LoadSeries(name string) (*Series, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := DecodeSeries(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", name, err)
	}
	return s, nil
}

// LoadAllocation decodes the allocation table stored in the named file.
// A missing file is reported as a MissingOptionalInputError.
func LoadAllocation(name string) (*Allocation, error) {
	f, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &MissingOptionalInputError{Name: name, Err: err}
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	a, err := DecodeAllocation(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", name, err)
	}
	return a, nil
}

// parseDateCell parses a date cell, ignoring a time part if any.
func parseDateCell(cell string) (date.Date, error) {
	cell = strings.TrimSpace(cell)
	if i := strings.IndexAny(cell, " T"); i > 0 {
		cell = cell[:i]
	}
	return date.Parse(cell)
}

func parseDecimals(cells []string) ([]decimal.Decimal, error) {
	values := make([]decimal.Decimal, len(cells))
	for i, c := range cells {
		v, err := decimal.NewFromString(strings.TrimSpace(c))
		if err != nil {
			return nil, fmt.Errorf("column %d: invalid number %q", i+2, c)
		}
		values[i] = v
	}
	return values, nil
}
