package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `rental_id,car_id,checkin_type,state,delay_at_checkout_in_minutes,previous_ended_rental_id,time_delta_with_previous_rental_in_minutes
1,10,mobile,ended,100,,
2,10,Connect,ended,-5,1.0,60
3,11,mobile,canceled,,,
`

/*
TestRead_Sample parses a small table.

	Cases:
	- optional cells map to absent values
	- float-formatted previous ids are accepted
	- checkin type and state are lower-cased
	- extra columns are ignored
*/
func TestRead_Sample(t *testing.T) {
	rentals, err := Read(strings.NewReader(sampleCSV), ',')
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rentals) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rentals))
	}

	a := rentals[0]
	if a.ID != 1 || a.HasPrevious() || a.GapToPrevious.Valid {
		t.Fatalf("unexpected first row: %+v", a)
	}
	if !a.CheckoutDelay.Valid || a.CheckoutDelay.Value != 100 {
		t.Fatalf("expected delay 100, got %+v", a.CheckoutDelay)
	}

	b := rentals[1]
	if !b.HasPrevious() || b.PreviousRental.ID != 1 {
		t.Fatalf("expected previous id 1, got %+v", b.PreviousRental)
	}
	if b.CheckinType != "connect" {
		t.Fatalf("expected lower-cased checkin type, got %q", b.CheckinType)
	}
	if !b.GapToPrevious.Valid || b.GapToPrevious.Value != 60 {
		t.Fatalf("expected gap 60, got %+v", b.GapToPrevious)
	}

	c := rentals[2]
	if c.CheckoutDelay.Valid {
		t.Fatalf("expected absent delay, got %+v", c.CheckoutDelay)
	}
	if c.State != "canceled" {
		t.Fatalf("expected canceled state, got %q", c.State)
	}
}

/*
TestRead_MissingColumn rejects tables that break the column contract.
*/
func TestRead_MissingColumn(t *testing.T) {
	in := "rental_id,checkin_type,state\n1,mobile,ended\n"
	if _, err := Read(strings.NewReader(in), ','); err == nil {
		t.Fatal("expected missing column error")
	}
}

/*
TestRead_BadNumeric surfaces non-numeric delay cells as an invalid-input
error before any calculation.
*/
func TestRead_BadNumeric(t *testing.T) {
	in := sampleCSV[:strings.Index(sampleCSV, "\n")+1] +
		"1,10,mobile,ended,soon,,\n"
	if _, err := Read(strings.NewReader(in), ','); err == nil {
		t.Fatal("expected invalid minutes error")
	}
}

/*
TestLoad_File loads from disk with a custom delimiter and validates config.
*/
func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rentals.csv")
	data := strings.ReplaceAll(sampleCSV, ",", ";")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	rentals, err := Load(Config{Path: path, Delimiter: ";"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rentals) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rentals))
	}

	if _, err := Load(Config{}); err == nil {
		t.Fatal("expected path validation error")
	}
}
