// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: raw SQL read models that
// bypass the domain aggregates and map rows straight into response structs.
package queries

import (
	"errors"

	"mfgorder/internal/core/domain/model/kernel"
	"mfgorder/internal/pkg/guard"
)

var (
	ErrGetOrderHeaderQueryIsNotConstructed = errors.New(
		"GetOrderHeaderQuery must be created via NewGetOrderHeaderQuery constructor",
	)
)

// GetOrderHeaderQuery retrieves one manufacturing order header by its composite
// business key.
//
// Example:
//
//	query, err := NewGetOrderHeaderQuery(100, "FAC1", "PROD-01", "MO0001")
//	if err != nil {
//	    return fmt.Errorf("invalid key: %w", err)
//	}
//
//	header, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order header: %w", err)
//	}
type GetOrderHeaderQuery struct {
	key kernel.OrderKey

	guard guard.ConstructorGuard
}

// NewGetOrderHeaderQuery creates a query for the given composite key parts.
// The key parts are validated the same way the write side validates them.
func NewGetOrderHeaderQuery(
	company int,
	facility string,
	productCode string,
	orderNumber string,
) (GetOrderHeaderQuery, error) {
	key, err := kernel.NewOrderKey(company, facility, productCode, orderNumber)
	if err != nil {
		return GetOrderHeaderQuery{}, err
	}

	return GetOrderHeaderQuery{
		key:   key,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderHeaderQueryIsNotConstructed if validation fails.
func (q GetOrderHeaderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHeaderQueryIsNotConstructed)
}

// Key returns the composite key the query selects by.
func (q GetOrderHeaderQuery) Key() kernel.OrderKey {
	return q.key
}

// GetOrderHeaderQueryResponse is the full read model of one header row,
// including the audit fields the update stamps.
type GetOrderHeaderQueryResponse struct {
	Company          int
	Facility         string
	ProductCode      string
	OrderNumber      string
	OrderStatus      int
	OrderedQuantity  float64
	DocumentsPrinted int
	LastModifiedDate int
	ChangeSequence   int
	ChangedBy        string
}
