package kernel

import (
	"errors"
	"fmt"
	"strings"

	"mfgorder/internal/pkg/errs"
	"mfgorder/internal/pkg/guard"
)

// ErrOrderKeyIsNotConstructed is returned when attempting to use an improperly initialized OrderKey.
// Order keys must be created using the NewOrderKey constructor to ensure validity.
var ErrOrderKeyIsNotConstructed = errs.NewValueIsRequiredError(
	"order key must be created via NewOrderKey constructor")

// OrderKey is the composite identity of a manufacturing order header:
// (company, facility, productCode, orderNumber). It is an immutable value
// object; the zero value is invalid and fails validation.
//
// Example:
//
//	key, err := kernel.NewOrderKey(280, "FAC1", "P1", "MO1")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(key) // Output: OrderKey(280,FAC1,P1,MO1)
type OrderKey struct { //nolint:recvcheck //using for validation
	company     int
	facility    string
	productCode string
	orderNumber string

	guard guard.ConstructorGuard
}

// NewOrderKey creates a new OrderKey from its four parts.
// The facility, product code and order number must be non-blank after trimming.
// The company is accepted as-is; range constraints on caller-supplied company
// numbers are not part of the key's contract.
//
// Returns:
//   - OrderKey: A valid key instance
//   - error: Validation error if any string part is blank
func NewOrderKey(company int, facility string, productCode string, orderNumber string) (OrderKey, error) {
	key := OrderKey{
		company: company,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		key.setFacility(facility),
		key.setProductCode(productCode),
		key.setOrderNumber(orderNumber),
	); err != nil {
		return OrderKey{}, err
	}

	return key, nil
}

// Validate checks if the OrderKey was properly constructed using the constructor.
// The zero value of OrderKey is invalid and will fail this validation.
func (k OrderKey) Validate() error {
	return k.guard.Validate(ErrOrderKeyIsNotConstructed)
}

// Company returns the company part of the key.
func (k OrderKey) Company() int {
	return k.company
}

// Facility returns the facility part of the key.
func (k OrderKey) Facility() string {
	return k.facility
}

// ProductCode returns the product code part of the key.
func (k OrderKey) ProductCode() string {
	return k.productCode
}

// OrderNumber returns the manufacturing order number part of the key.
func (k OrderKey) OrderNumber() string {
	return k.orderNumber
}

// String returns a human-readable string representation of the key.
// This method implements the fmt.Stringer interface.
//
// Example:
//
//	key, _ := kernel.NewOrderKey(280, "FAC1", "P1", "MO1")
//	fmt.Println(key.String()) // Output: OrderKey(280,FAC1,P1,MO1)
func (k OrderKey) String() string {
	return fmt.Sprintf("OrderKey(%d,%s,%s,%s)", k.company, k.facility, k.productCode, k.orderNumber)
}

// IsEqual compares two keys for equality part by part.
// Both keys must be properly constructed for the comparison to succeed.
func (k OrderKey) IsEqual(other OrderKey) (bool, error) {
	if err := errors.Join(k.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return k == other, nil
}

// setFacility sets the facility part with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers. Pointer receivers on these private setters enable self-encapsulated
// validation of business requirements during object construction.
func (k *OrderKey) setFacility(facility string) error {
	facility = strings.TrimSpace(facility)
	if facility == "" {
		return errs.NewValueIsRequiredError("facility")
	}

	k.facility = facility
	return nil
}

// setProductCode sets the product code part with validation.
func (k *OrderKey) setProductCode(productCode string) error {
	productCode = strings.TrimSpace(productCode)
	if productCode == "" {
		return errs.NewValueIsRequiredError("productCode")
	}

	k.productCode = productCode
	return nil
}

// setOrderNumber sets the order number part with validation.
func (k *OrderKey) setOrderNumber(orderNumber string) error {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}

	k.orderNumber = orderNumber
	return nil
}
