package rental

import "strings"

// Checkin types observed in the fleet data.
const (
	CheckinConnect = "connect"
	CheckinMobile  = "mobile"
)

// StateCanceled is the terminal lifecycle state of a canceled rental.
const StateCanceled = "canceled"

// Checkout delays beyond half a day come from corrupted timestamps and are
// capped rather than discarded.
const (
	MinDelayMinutes = -720
	MaxDelayMinutes = 720
)

// Minutes is an optional duration in minutes. Valid is false when the source
// cell was empty.
type Minutes struct {
	Valid bool
	Value float64
}

// SomeMinutes returns a present Minutes value.
func SomeMinutes(v float64) Minutes { return Minutes{Valid: true, Value: v} }

// Ref is an optional reference to another rental by identifier.
type Ref struct {
	Valid bool
	ID    int64
}

// Rental is one row of the rental table.
type Rental struct {
	ID             int64
	PreviousRental Ref
	CheckoutDelay  Minutes
	GapToPrevious  Minutes
	CheckinType    string
	State          string
}

// HasPrevious reports whether the rental references the rental that last
// occupied the same vehicle.
func (r Rental) HasPrevious() bool { return r.PreviousRental.Valid }

// IsConnect reports whether the rental used keyless checkin.
func (r Rental) IsConnect() bool { return strings.EqualFold(r.CheckinType, CheckinConnect) }

// IsCanceled reports whether the rental ended in the canceled state.
func (r Rental) IsCanceled() bool { return r.State == StateCanceled }

// ClampDelay caps a checkout delay to [MinDelayMinutes, MaxDelayMinutes].
func ClampDelay(v float64) float64 {
	if v < MinDelayMinutes {
		return MinDelayMinutes
	}
	if v > MaxDelayMinutes {
		return MaxDelayMinutes
	}
	return v
}

// DelayIndex maps a rental identifier to the raw checkout delay of that
// rental. It is built once from the full, unfiltered table so that delays can
// be attributed across scope boundaries.
type DelayIndex map[int64]Minutes

// NewDelayIndex builds the lookup from the full table.
func NewDelayIndex(rentals []Rental) DelayIndex {
	idx := make(DelayIndex, len(rentals))
	for _, r := range rentals {
		idx[r.ID] = r.CheckoutDelay
	}
	return idx
}

// PreviousDelay resolves the checkout delay of the rental referenced by r.
// The result is absent when r has no previous rental, the reference is
// unknown, or the referenced rental's checkout was never observed.
func (idx DelayIndex) PreviousDelay(r Rental) Minutes {
	if !r.PreviousRental.Valid {
		return Minutes{}
	}
	d, ok := idx[r.PreviousRental.ID]
	if !ok {
		return Minutes{}
	}
	return d
}
