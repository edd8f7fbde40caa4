package orderhead

import (
	"errors"
	"fmt"
	"strings"

	"mfgorder/internal/core/domain/model/kernel"
	"mfgorder/internal/pkg/errs"
)

var (
	// ErrHeaderIsNotConstructed is returned when a Header instance was not created
	// through NewHeader or RestoreHeader. This ensures all headers are properly validated.
	ErrHeaderIsNotConstructed = errors.New("Header must be created via NewHeader or RestoreHeader constructors")
)

// Header is the aggregate root for a manufacturing order header record.
//
// Header follows these invariants:
//   - Identified by a valid composite OrderKey
//   - The change sequence counter is at least 1 and moves by exactly +1 per update
//   - The printed flag, last-modified date, change sequence and changed-by user
//     are only ever mutated together, through SetDocumentsPrinted
//   - Can only be created through NewHeader or RestoreHeader
//
// Headers are created upstream by the order release flow; this service locates
// pre-existing headers and mutates them in place.
type Header struct {
	// key is the composite identity (company, facility, productCode, orderNumber)
	key kernel.OrderKey

	// status is the manufacturing order lifecycle state
	status Status

	// orderedQuantity is the quantity the order was created for
	orderedQuantity float64

	// documentsPrinted marks whether order documents have been produced
	documentsPrinted PrintedFlag

	// lastModifiedDate is the date of the most recent update
	lastModifiedDate kernel.CalendarDate

	// changeSequence is the optimistic-concurrency counter, bumped on every update
	changeSequence int

	// changedBy is the user identity of the most recent update
	changedBy string

	// isConstructed ensures the header was created via a constructor
	isConstructed bool
}

// NewHeader creates a fresh Header with the documents-printed flag cleared and
// the change sequence counter at its initial value of 1. Used by seeding and
// tests; production headers are created by the upstream order release flow.
//
// Parameters:
//   - key: Composite identity of the header
//   - status: Initial lifecycle status
//   - orderedQuantity: Ordered quantity (must not be negative)
//   - on: Creation date, stamped as the last-modified date
//   - by: User identity stamped as changed-by
func NewHeader(
	key kernel.OrderKey,
	status Status,
	orderedQuantity float64,
	on kernel.CalendarDate,
	by string,
) (*Header, error) {
	return RestoreHeader(key, status, orderedQuantity, DocumentsNotPrinted, on, 1, by)
}

// RestoreHeader reconstructs a Header from persisted state. All parts are
// validated; use this when mapping database rows back into the domain.
func RestoreHeader(
	key kernel.OrderKey,
	status Status,
	orderedQuantity float64,
	documentsPrinted PrintedFlag,
	lastModifiedDate kernel.CalendarDate,
	changeSequence int,
	changedBy string,
) (*Header, error) {
	header := &Header{
		isConstructed: true,
	}

	if err := errors.Join(
		header.setKey(key),
		header.setStatus(status),
		header.setOrderedQuantity(orderedQuantity),
		header.setDocumentsPrinted(documentsPrinted),
		header.setLastModifiedDate(lastModifiedDate),
		header.setChangeSequence(changeSequence),
		header.setChangedBy(changedBy),
	); err != nil {
		return nil, err
	}

	return header, nil
}

// Validate ensures the Header instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (h *Header) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHeaderIsNotConstructed
	}

	return nil
}

// IsEqual compares two headers by their composite keys.
func (h *Header) IsEqual(other *Header) bool {
	if other == nil {
		return false
	}

	equal, err := h.key.IsEqual(other.key)
	return err == nil && equal
}

// Key returns the header's composite identity.
func (h *Header) Key() kernel.OrderKey {
	return h.key
}

// Status returns the manufacturing order lifecycle status.
func (h *Header) Status() Status {
	return h.status
}

// OrderedQuantity returns the quantity the order was created for.
func (h *Header) OrderedQuantity() float64 {
	return h.orderedQuantity
}

// DocumentsPrinted returns the documents-printed flag.
func (h *Header) DocumentsPrinted() PrintedFlag {
	return h.documentsPrinted
}

// LastModifiedDate returns the date of the most recent update.
func (h *Header) LastModifiedDate() kernel.CalendarDate {
	return h.lastModifiedDate
}

// ChangeSequence returns the optimistic-concurrency counter.
func (h *Header) ChangeSequence() int {
	return h.changeSequence
}

// ChangedBy returns the user identity of the most recent update.
func (h *Header) ChangedBy() string {
	return h.changedBy
}

// SetDocumentsPrinted records that order documents were printed (or the flag
// cleared again) on the given date by the given user. The flag, last-modified
// date, changed-by user and change sequence counter move together: no caller
// can observe a header with some of the four updated and the rest stale.
//
// The operation is deliberately not idempotent. Re-applying the same flag value
// still bumps the change sequence by 1, so every invocation leaves a trace in
// the counter.
//
// Parameters:
//   - flag: The new documents-printed value
//   - on: The date to stamp as last-modified
//   - by: The user identity to stamp as changed-by (must be non-blank)
//
// Example:
//
//	err := header.SetDocumentsPrinted(orderhead.DocumentsPrinted, clock.Today(), "MWORKER")
//	if err != nil {
//	    // Handle validation failure; the header is unchanged
//	}
func (h *Header) SetDocumentsPrinted(flag PrintedFlag, on kernel.CalendarDate, by string) error {
	if err := h.Validate(); err != nil {
		return err
	}

	if err := flag.Validate(); err != nil {
		return err
	}

	if err := on.Validate(); err != nil {
		return err
	}

	by = strings.TrimSpace(by)
	if by == "" {
		return errs.NewValueIsRequiredError("changedBy")
	}

	h.documentsPrinted = flag
	h.lastModifiedDate = on
	h.changedBy = by
	h.changeSequence++

	return nil
}

// DocumentsPrintedEvent returns an event snapshot of the header after a
// successful SetDocumentsPrinted, ready for publishing.
func (h *Header) DocumentsPrintedEvent() DocumentsPrintedEvent {
	return DocumentsPrintedEvent{
		Company:          h.key.Company(),
		Facility:         h.key.Facility(),
		ProductCode:      h.key.ProductCode(),
		OrderNumber:      h.key.OrderNumber(),
		DocumentsPrinted: h.documentsPrinted.Int(),
		LastModifiedDate: h.lastModifiedDate.Int(),
		ChangeSequence:   h.changeSequence,
		ChangedBy:        h.changedBy,
	}
}

// setKey validates and sets the header's composite identity.
// This is a private method used only during construction.
func (h *Header) setKey(key kernel.OrderKey) error {
	if err := key.Validate(); err != nil {
		return err
	}
	h.key = key
	return nil
}

// setStatus validates and sets the lifecycle status.
func (h *Header) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	h.status = status
	return nil
}

// setOrderedQuantity validates and sets the ordered quantity.
func (h *Header) setOrderedQuantity(quantity float64) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderedQuantity",
			fmt.Errorf("%v is negative", quantity),
		)
	}
	h.orderedQuantity = quantity
	return nil
}

// setDocumentsPrinted validates and sets the printed flag.
func (h *Header) setDocumentsPrinted(flag PrintedFlag) error {
	if err := flag.Validate(); err != nil {
		return err
	}
	h.documentsPrinted = flag
	return nil
}

// setLastModifiedDate validates and sets the last-modified date.
func (h *Header) setLastModifiedDate(date kernel.CalendarDate) error {
	if err := date.Validate(); err != nil {
		return err
	}
	h.lastModifiedDate = date
	return nil
}

// setChangeSequence validates and sets the change sequence counter.
// The counter starts at 1 on creation and only ever grows.
func (h *Header) setChangeSequence(changeSequence int) error {
	if changeSequence < 1 {
		return errs.NewVersionIsInvalidError("changeSequenceNumber")
	}
	h.changeSequence = changeSequence
	return nil
}

// setChangedBy validates and sets the changed-by user.
func (h *Header) setChangedBy(changedBy string) error {
	changedBy = strings.TrimSpace(changedBy)
	if changedBy == "" {
		return errs.NewValueIsRequiredError("changedBy")
	}
	h.changedBy = changedBy
	return nil
}
