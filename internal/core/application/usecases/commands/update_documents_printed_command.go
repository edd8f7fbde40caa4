package commands

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"mfgorder/internal/core/domain/model/kernel"
	"mfgorder/internal/core/domain/model/orderhead"
	"mfgorder/internal/pkg/errs"
	"mfgorder/internal/pkg/guard"
)

var (
	ErrUpdateDocumentsPrintedCommandIsNotConstructed = errors.New(
		"UpdateDocumentsPrintedCommand must be created via NewUpdateDocumentsPrintedCommand constructor",
	)
)

// UpdateDocumentsPrintedCommand is the canonical, validated form of a request
// to set the documents-printed flag on one manufacturing order header, with
// the facility supplied directly by the caller.
//
// The constructor is the input validator: raw string fields in, typed
// canonical values out, rejecting on the first invalid field.
//
// Example:
//
//	session, _ := kernel.NewSession(280, "MWORKER")
//	cmd, err := NewUpdateDocumentsPrintedCommand("", "FAC1", "P1", "MO1", "1", session)
//	if err != nil {
//	    return fmt.Errorf("invalid input: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to update order header: %w", err)
//	}
type UpdateDocumentsPrintedCommand struct { //nolint:recvcheck //using for validation
	company          int
	facility         string
	productCode      string
	orderNumber      string
	documentsPrinted orderhead.PrintedFlag
	changedBy        string

	guard guard.ConstructorGuard
}

// NewUpdateDocumentsPrintedCommand validates raw caller input into a command.
//
// Fields are checked in a fixed order and validation stops at the first
// failure, so the caller always learns about the earliest invalid field:
//
//  1. company: blank substitutes the session's default; otherwise must parse
//     as an integer.
//  2. facility: mandatory after trimming.
//  3. productCode: mandatory after trimming.
//  4. orderNumber: mandatory after trimming.
//  5. documentsPrinted: blank defaults to "0"; otherwise must be 0 or 1.
//
// The changed-by identity is taken from the session, never from raw input.
func NewUpdateDocumentsPrintedCommand(
	company string,
	facility string,
	productCode string,
	orderNumber string,
	documentsPrinted string,
	session kernel.Session,
) (UpdateDocumentsPrintedCommand, error) {
	if err := session.Validate(); err != nil {
		return UpdateDocumentsPrintedCommand{}, err
	}

	cmd := UpdateDocumentsPrintedCommand{
		changedBy: session.User(),
		guard:     guard.NewConstructorGuard(),
	}

	// Sequential on purpose: the field order and first-failure-wins are part
	// of the contract, so errors.Join over all setters would be wrong here.
	if err := cmd.setCompany(company, session.Company()); err != nil {
		return UpdateDocumentsPrintedCommand{}, err
	}
	if err := cmd.setFacility(facility); err != nil {
		return UpdateDocumentsPrintedCommand{}, err
	}
	if err := cmd.setProductCode(productCode); err != nil {
		return UpdateDocumentsPrintedCommand{}, err
	}
	if err := cmd.setOrderNumber(orderNumber); err != nil {
		return UpdateDocumentsPrintedCommand{}, err
	}
	if err := cmd.setDocumentsPrinted(documentsPrinted); err != nil {
		return UpdateDocumentsPrintedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDocumentsPrintedCommandIsNotConstructed if validation fails.
func (c UpdateDocumentsPrintedCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDocumentsPrintedCommandIsNotConstructed)
}

// Company returns the canonical company number.
func (c UpdateDocumentsPrintedCommand) Company() int {
	return c.company
}

// Facility returns the canonical facility code.
func (c UpdateDocumentsPrintedCommand) Facility() string {
	return c.facility
}

// ProductCode returns the canonical product code.
func (c UpdateDocumentsPrintedCommand) ProductCode() string {
	return c.productCode
}

// OrderNumber returns the canonical manufacturing order number.
func (c UpdateDocumentsPrintedCommand) OrderNumber() string {
	return c.orderNumber
}

// DocumentsPrinted returns the validated printed flag value.
func (c UpdateDocumentsPrintedCommand) DocumentsPrinted() orderhead.PrintedFlag {
	return c.documentsPrinted
}

// ChangedBy returns the session user the update will be stamped with.
func (c UpdateDocumentsPrintedCommand) ChangedBy() string {
	return c.changedBy
}

// LogValue renders the canonicalized parameter set for diagnostic logging.
// This method implements the slog.LogValuer interface.
func (c UpdateDocumentsPrintedCommand) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("company", c.company),
		slog.String("facility", c.facility),
		slog.String("productCode", c.productCode),
		slog.String("orderNumber", c.orderNumber),
		slog.Int("documentsPrinted", c.documentsPrinted.Int()),
		slog.String("changedBy", c.changedBy),
	)
}

func (c *UpdateDocumentsPrintedCommand) setCompany(company string, sessionCompany int) error {
	company = strings.TrimSpace(company)
	if company == "" {
		c.company = sessionCompany
		return nil
	}

	parsed, err := strconv.Atoi(company)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("company", err)
	}

	c.company = parsed
	return nil
}

func (c *UpdateDocumentsPrintedCommand) setFacility(facility string) error {
	facility = strings.TrimSpace(facility)
	if facility == "" {
		return errs.NewValueIsRequiredError("facility")
	}

	c.facility = facility
	return nil
}

func (c *UpdateDocumentsPrintedCommand) setProductCode(productCode string) error {
	productCode = strings.TrimSpace(productCode)
	if productCode == "" {
		return errs.NewValueIsRequiredError("productCode")
	}

	c.productCode = productCode
	return nil
}

func (c *UpdateDocumentsPrintedCommand) setOrderNumber(orderNumber string) error {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *UpdateDocumentsPrintedCommand) setDocumentsPrinted(documentsPrinted string) error {
	documentsPrinted = strings.TrimSpace(documentsPrinted)
	if documentsPrinted == "" {
		documentsPrinted = "0"
	}

	parsed, err := strconv.Atoi(documentsPrinted)
	if err != nil {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"documentsPrintedFlag",
			documentsPrinted,
			orderhead.DocumentsNotPrinted.Int(),
			orderhead.DocumentsPrinted.Int(),
			err,
		)
	}

	flag, err := orderhead.NewPrintedFlag(parsed)
	if err != nil {
		return err
	}

	c.documentsPrinted = flag
	return nil
}
