// Package dataset loads the rental table from a delimited file. Column names
// are fixed contract strings; a missing required column is a fatal load
// error, while empty cells become absent values.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fleetops/rentalgap/core/rental"
)

// Config describes the source file.
type Config struct {
	Path      string `json:"path"`
	Delimiter string `json:"delimiter"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Delimiter == "" {
		c.Delimiter = ","
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("dataset path is required")
	}
	if len([]rune(c.Delimiter)) != 1 {
		return fmt.Errorf("delimiter must be a single character")
	}
	return nil
}

// Contract column names.
const (
	colRentalID   = "rental_id"
	colCheckin    = "checkin_type"
	colState      = "state"
	colDelay      = "delay_at_checkout_in_minutes"
	colPreviousID = "previous_ended_rental_id"
	colGap        = "time_delta_with_previous_rental_in_minutes"
)

var requiredColumns = []string{
	colRentalID, colCheckin, colState, colDelay, colPreviousID, colGap,
}

// Load reads the whole table from cfg.Path. The file handle is released
// before returning; the result is meant to be loaded once per process and
// reused.
func Load(cfg Config) ([]rental.Rental, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Read(f, []rune(cfg.Delimiter)[0])
}

// Read parses the table from r using the given delimiter.
func Read(r io.Reader, delim rune) ([]rental.Rental, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	var rentals []rental.Rental
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++
		row, err := parseRow(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		rentals = append(rentals, row)
	}
	return rentals, nil
}

func parseRow(rec []string, cols map[string]int) (rental.Rental, error) {
	var r rental.Rental
	id, ok, err := parseID(cell(rec, cols[colRentalID]))
	if err != nil {
		return r, fmt.Errorf("%s: %w", colRentalID, err)
	}
	if !ok {
		return r, fmt.Errorf("%s: empty", colRentalID)
	}
	r.ID = id

	prev, ok, err := parseID(cell(rec, cols[colPreviousID]))
	if err != nil {
		return r, fmt.Errorf("%s: %w", colPreviousID, err)
	}
	if ok {
		r.PreviousRental = rental.Ref{Valid: true, ID: prev}
	}

	if r.CheckoutDelay, err = parseMinutes(cell(rec, cols[colDelay])); err != nil {
		return r, fmt.Errorf("%s: %w", colDelay, err)
	}
	if r.GapToPrevious, err = parseMinutes(cell(rec, cols[colGap])); err != nil {
		return r, fmt.Errorf("%s: %w", colGap, err)
	}

	r.CheckinType = strings.ToLower(strings.TrimSpace(cell(rec, cols[colCheckin])))
	r.State = strings.ToLower(strings.TrimSpace(cell(rec, cols[colState])))
	return r, nil
}

func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}

// parseID accepts integers and float-formatted integers; spreadsheet exports
// render optional id columns as "275893.0".
func parseID(s string) (int64, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id, true, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid identifier %q", s)
	}
	return int64(f), true, nil
}

func parseMinutes(s string) (rental.Minutes, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return rental.Minutes{}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return rental.Minutes{}, fmt.Errorf("invalid minutes %q", s)
	}
	return rental.SomeMinutes(v), nil
}
