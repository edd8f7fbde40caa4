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
	ErrUpdateDocumentsPrintedByWarehouseCommandIsNotConstructed = errors.New(
		"UpdateDocumentsPrintedByWarehouseCommand must be created via " +
			"NewUpdateDocumentsPrintedByWarehouseCommand constructor",
	)
)

// UpdateDocumentsPrintedByWarehouseCommand is the canonical, validated form of
// the indirect update variant: the caller supplies a warehouse code instead of
// a facility, and the facility is resolved through the warehouse-master lookup
// before the locked update runs.
type UpdateDocumentsPrintedByWarehouseCommand struct { //nolint:recvcheck //using for validation
	company          int
	warehouse        string
	productCode      string
	orderNumber      string
	documentsPrinted orderhead.PrintedFlag
	changedBy        string

	guard guard.ConstructorGuard
}

// NewUpdateDocumentsPrintedByWarehouseCommand validates raw caller input.
// The field order mirrors the direct variant with the warehouse in the
// facility's place: company, warehouse, productCode, orderNumber,
// documentsPrinted; validation stops at the first failure.
func NewUpdateDocumentsPrintedByWarehouseCommand(
	company string,
	warehouse string,
	productCode string,
	orderNumber string,
	documentsPrinted string,
	session kernel.Session,
) (UpdateDocumentsPrintedByWarehouseCommand, error) {
	if err := session.Validate(); err != nil {
		return UpdateDocumentsPrintedByWarehouseCommand{}, err
	}

	cmd := UpdateDocumentsPrintedByWarehouseCommand{
		changedBy: session.User(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setCompany(company, session.Company()); err != nil {
		return UpdateDocumentsPrintedByWarehouseCommand{}, err
	}
	if err := cmd.setWarehouse(warehouse); err != nil {
		return UpdateDocumentsPrintedByWarehouseCommand{}, err
	}
	if err := cmd.setProductCode(productCode); err != nil {
		return UpdateDocumentsPrintedByWarehouseCommand{}, err
	}
	if err := cmd.setOrderNumber(orderNumber); err != nil {
		return UpdateDocumentsPrintedByWarehouseCommand{}, err
	}
	if err := cmd.setDocumentsPrinted(documentsPrinted); err != nil {
		return UpdateDocumentsPrintedByWarehouseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDocumentsPrintedByWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDocumentsPrintedByWarehouseCommandIsNotConstructed)
}

// Company returns the canonical company number.
func (c UpdateDocumentsPrintedByWarehouseCommand) Company() int {
	return c.company
}

// Warehouse returns the canonical warehouse code awaiting resolution.
func (c UpdateDocumentsPrintedByWarehouseCommand) Warehouse() string {
	return c.warehouse
}

// ProductCode returns the canonical product code.
func (c UpdateDocumentsPrintedByWarehouseCommand) ProductCode() string {
	return c.productCode
}

// OrderNumber returns the canonical manufacturing order number.
func (c UpdateDocumentsPrintedByWarehouseCommand) OrderNumber() string {
	return c.orderNumber
}

// DocumentsPrinted returns the validated printed flag value.
func (c UpdateDocumentsPrintedByWarehouseCommand) DocumentsPrinted() orderhead.PrintedFlag {
	return c.documentsPrinted
}

// ChangedBy returns the session user the update will be stamped with.
func (c UpdateDocumentsPrintedByWarehouseCommand) ChangedBy() string {
	return c.changedBy
}

// LogValue renders the canonicalized parameter set for diagnostic logging.
// This method implements the slog.LogValuer interface.
func (c UpdateDocumentsPrintedByWarehouseCommand) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("company", c.company),
		slog.String("warehouse", c.warehouse),
		slog.String("productCode", c.productCode),
		slog.String("orderNumber", c.orderNumber),
		slog.Int("documentsPrinted", c.documentsPrinted.Int()),
		slog.String("changedBy", c.changedBy),
	)
}

func (c *UpdateDocumentsPrintedByWarehouseCommand) setCompany(company string, sessionCompany int) error {
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

func (c *UpdateDocumentsPrintedByWarehouseCommand) setWarehouse(warehouse string) error {
	warehouse = strings.TrimSpace(warehouse)
	if warehouse == "" {
		return errs.NewValueIsRequiredError("warehouse")
	}

	c.warehouse = warehouse
	return nil
}

func (c *UpdateDocumentsPrintedByWarehouseCommand) setProductCode(productCode string) error {
	productCode = strings.TrimSpace(productCode)
	if productCode == "" {
		return errs.NewValueIsRequiredError("productCode")
	}

	c.productCode = productCode
	return nil
}

func (c *UpdateDocumentsPrintedByWarehouseCommand) setOrderNumber(orderNumber string) error {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *UpdateDocumentsPrintedByWarehouseCommand) setDocumentsPrinted(documentsPrinted string) error {
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
