package orderhead

import (
	"fmt"

	"mfgorder/internal/pkg/errs"
)

// Status represents the lifecycle state of a manufacturing order.
//
// State progression:
//
//	Planned ──> Released ──> Started ──> Completed
//
// This service never transitions the status; it only reads it to decide
// whether order documents may still be produced.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Planned is the initial status of a manufacturing order proposal.
	Planned

	// Released indicates the order has been released to the shop floor.
	Released

	// Started indicates production has begun.
	Started

	// Completed indicates the order has been finished and closed.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Planned:   "Planned",
		Released:  "Released",
		Started:   "Started",
		Completed: "Completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Planned:   "Planned",
		Released:  "Released",
		Started:   "Started",
		Completed: "Completed",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Planned, Released, Started, Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsPrintable reports whether order documents may be produced for an order
// in this status. Documents are printed for released and started orders;
// planned orders are not yet firm and completed orders need none.
func (s Status) IsPrintable() bool {
	return s == Released || s == Started
}
