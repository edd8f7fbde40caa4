package queries

import (
	"context"

	"mfgorder/internal/core/domain/model/orderhead"

	"gorm.io/gorm"
)

// ListUnprintedOrdersQueryHandler retrieves headers awaiting document
// production from the database.
//
// Example:
//
//	handler := NewListUnprintedOrdersQueryHandler(db)
//	query, _ := NewListUnprintedOrdersQuery(100, "FAC1", 50)
//
//	headers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list unprinted headers: %v", err)
//	    return err
//	}
type ListUnprintedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListUnprintedOrdersQueryHandler creates a handler for unprinted-header queries.
// Requires a GORM database connection for query execution.
func NewListUnprintedOrdersQueryHandler(db *gorm.DB) ListUnprintedOrdersQueryHandler {
	return ListUnprintedOrdersQueryHandler{db: db}
}

// Handle executes the query. Only headers in a printable status (released or
// started) with the printed flag cleared are returned, ordered by order number
// for deterministic batches.
func (h ListUnprintedOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListUnprintedOrdersQuery,
) ([]ListUnprintedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	headers := make([]ListUnprintedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			company,
			facility,
			product_code,
			order_number,
			order_status,
			ordered_quantity
		FROM order_headers
		WHERE company = ?
		  AND facility = ?
		  AND documents_printed = ?
		  AND order_status IN (?, ?)
		ORDER BY order_number
		LIMIT ?
	`,
		query.Company(),
		query.Facility(),
		orderhead.DocumentsNotPrinted.Int(),
		int(orderhead.Released),
		int(orderhead.Started),
		query.Limit(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var header ListUnprintedOrdersQueryResponse

		err = rows.Scan(
			&header.Company,
			&header.Facility,
			&header.ProductCode,
			&header.OrderNumber,
			&header.OrderStatus,
			&header.OrderedQuantity,
		)
		if err != nil {
			return nil, err
		}

		headers = append(headers, header)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return headers, nil
}
