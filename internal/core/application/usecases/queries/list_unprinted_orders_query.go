package queries

import (
	"errors"
	"strings"

	"mfgorder/internal/pkg/errs"
	"mfgorder/internal/pkg/guard"
)

const (
	// ListUnprintedOrdersMinLimit is the smallest accepted result cap.
	ListUnprintedOrdersMinLimit = 1
	// ListUnprintedOrdersMaxLimit is the largest accepted result cap.
	ListUnprintedOrdersMaxLimit = 1000
)

var (
	ErrListUnprintedOrdersQueryIsNotConstructed = errors.New(
		"ListUnprintedOrdersQuery must be created via NewListUnprintedOrdersQuery constructor",
	)
)

// ListUnprintedOrdersQuery retrieves order headers whose documents have not
// been printed yet and whose status allows document production. Feeds the
// document print job and the HTTP list endpoint.
type ListUnprintedOrdersQuery struct {
	company  int
	facility string
	limit    int

	guard guard.ConstructorGuard
}

// NewListUnprintedOrdersQuery creates a query for unprinted printable headers
// in one company and facility, capped at limit rows (1..1000).
func NewListUnprintedOrdersQuery(company int, facility string, limit int) (ListUnprintedOrdersQuery, error) {
	facility = strings.TrimSpace(facility)
	if facility == "" {
		return ListUnprintedOrdersQuery{}, errs.NewValueIsRequiredError("facility")
	}

	if limit < ListUnprintedOrdersMinLimit || limit > ListUnprintedOrdersMaxLimit {
		return ListUnprintedOrdersQuery{}, errs.NewValueIsOutOfRangeError(
			"limit", limit, ListUnprintedOrdersMinLimit, ListUnprintedOrdersMaxLimit)
	}

	return ListUnprintedOrdersQuery{
		company:  company,
		facility: facility,
		limit:    limit,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListUnprintedOrdersQueryIsNotConstructed if validation fails.
func (q ListUnprintedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListUnprintedOrdersQueryIsNotConstructed)
}

// Company returns the company number the query selects by.
func (q ListUnprintedOrdersQuery) Company() int {
	return q.company
}

// Facility returns the facility code the query selects by.
func (q ListUnprintedOrdersQuery) Facility() string {
	return q.facility
}

// Limit returns the result cap.
func (q ListUnprintedOrdersQuery) Limit() int {
	return q.limit
}

// ListUnprintedOrdersQueryResponse represents one header awaiting document
// production.
type ListUnprintedOrdersQueryResponse struct {
	Company         int
	Facility        string
	ProductCode     string
	OrderNumber     string
	OrderStatus     int
	OrderedQuantity float64
}
