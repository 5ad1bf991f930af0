// Package export writes threshold-sweep tables in JSON or CSV form for
// downstream visualization.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fleetops/rentalgap/core/analysis"
)

// WriteJSON writes the sweep table to w in JSON format.
func WriteJSON(w io.Writer, points []analysis.SweepPoint) error {
	enc := json.NewEncoder(w)
	return enc.Encode(points)
}

// WriteCSV writes the sweep table to w with one row per threshold.
func WriteCSV(w io.Writer, points []analysis.SweepPoint) error {
	cw := csv.NewWriter(w)
	header := []string{
		"threshold", "total_rentals", "rentals_with_previous",
		"blocked_rentals", "blocked_percentage", "current_problems",
		"problems_solved", "solve_efficiency", "availability_impact",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, p := range points {
		rec := []string{
			strconv.Itoa(p.Threshold),
			strconv.Itoa(p.TotalRentals),
			strconv.Itoa(p.RentalsWithPrevious),
			strconv.Itoa(p.BlockedRentals),
			strconv.FormatFloat(p.BlockedPercentage, 'f', -1, 64),
			strconv.Itoa(p.CurrentProblems),
			strconv.Itoa(p.ProblemsSolved),
			strconv.FormatFloat(p.SolveEfficiency, 'f', -1, 64),
			strconv.FormatFloat(p.AvailabilityImpact, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Write picks the format from the destination file extension.
func Write(w io.Writer, path string, points []analysis.SweepPoint) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return WriteJSON(w, points)
	case ".csv":
		return WriteCSV(w, points)
	}
	return fmt.Errorf("unsupported export format: %s", filepath.Ext(path))
}
