package queries

import (
	"context"
	"database/sql"
	"errors"

	"mfgorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderHeaderQueryHandler retrieves a single order header row from the database.
type GetOrderHeaderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHeaderQueryHandler creates a handler for single-header lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderHeaderQueryHandler(db *gorm.DB) GetOrderHeaderQueryHandler {
	return GetOrderHeaderQueryHandler{db: db}
}

// Handle executes the unique-key lookup. A missing row surfaces as an
// object-not-found error carrying the key's diagnostic form.
func (h GetOrderHeaderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHeaderQuery,
) (GetOrderHeaderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderHeaderQueryResponse{}, err
	}

	key := query.Key()

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			company,
			facility,
			product_code,
			order_number,
			order_status,
			ordered_quantity,
			documents_printed,
			last_modified_date,
			change_sequence_number,
			changed_by_user
		FROM order_headers
		WHERE company = ? AND facility = ? AND product_code = ? AND order_number = ?
	`, key.Company(), key.Facility(), key.ProductCode(), key.OrderNumber()).Row()

	var resp GetOrderHeaderQueryResponse
	err := row.Scan(
		&resp.Company,
		&resp.Facility,
		&resp.ProductCode,
		&resp.OrderNumber,
		&resp.OrderStatus,
		&resp.OrderedQuantity,
		&resp.DocumentsPrinted,
		&resp.LastModifiedDate,
		&resp.ChangeSequence,
		&resp.ChangedBy,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderHeaderQueryResponse{}, errs.NewObjectNotFoundError("orderHeader", key.String())
		}
		return GetOrderHeaderQueryResponse{}, err
	}

	return resp, nil
}
