package ports

import (
	"context"
	"errors"
)

// ErrFacilityNotResolved is the sentinel every FacilityResolutionError unwraps to.
var ErrFacilityNotResolved = errors.New("facility not resolved")

// FacilityResolutionError indicates that a warehouse code could not be resolved
// to a facility. When the lookup service reported an error, Message carries the
// upstream text unchanged so the transaction's invoker sees what the service said.
type FacilityResolutionError struct {
	Warehouse string
	Message   string
}

// NewFacilityResolutionError creates a FacilityResolutionError for the given
// warehouse carrying the upstream message verbatim.
func NewFacilityResolutionError(warehouse string, message string) *FacilityResolutionError {
	return &FacilityResolutionError{
		Warehouse: warehouse,
		Message:   message,
	}
}

// Error returns the upstream message as-is.
func (e *FacilityResolutionError) Error() string {
	return e.Message
}

func (e *FacilityResolutionError) Unwrap() error {
	return ErrFacilityNotResolved
}

// FacilityResolver maps a warehouse code to its facility code through the
// external warehouse-master lookup. The lookup is capped to a single match:
// a warehouse belongs to exactly one facility.
type FacilityResolver interface {
	// ResolveFacility returns the facility code for the warehouse, or a
	// *FacilityResolutionError when the warehouse cannot be resolved.
	// A successful return never carries a blank facility.
	ResolveFacility(ctx context.Context, warehouse string) (string, error)
}
