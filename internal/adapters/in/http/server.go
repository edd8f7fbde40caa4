package http

import (
	"errors"
	"net/http"

	"mfgorder/internal/core/application/usecases/commands"
	"mfgorder/internal/core/application/usecases/queries"
	"mfgorder/internal/core/domain/model/kernel"
	"mfgorder/internal/core/ports"
	"mfgorder/internal/generated/servers"
	"mfgorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// userIDHeader carries the caller's identity, set by the gateway upstream.
const userIDHeader = "X-User-Id"

// businessErrorCode is the two-character code attached to every business error.
const businessErrorCode = "01"

// defaultUnprintedLimit caps the unprinted listing when the caller gives none.
const defaultUnprintedLimit = 100

// wireFieldNames maps canonical parameter names to their wire field names.
var wireFieldNames = map[string]string{
	"company":              "CONO",
	"facility":             "FACI",
	"warehouse":            "WHLO",
	"productCode":          "PRNO",
	"orderNumber":          "MFNO",
	"documentsPrintedFlag": "WODP",
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	updateDocumentsPrintedHandler            commands.UpdateDocumentsPrintedCommandHandler
	updateDocumentsPrintedByWarehouseHandler commands.UpdateDocumentsPrintedByWarehouseCommandHandler

	// Query handlers
	getOrderHeaderHandler      queries.GetOrderHeaderQueryHandler
	listUnprintedOrdersHandler queries.ListUnprintedOrdersQueryHandler

	defaultCompany int
}

// NewServer creates a new HTTP server with the required command and query handlers.
// The default company substitutes a blank CONO on update requests.
func NewServer(
	updateDocumentsPrintedHandler commands.UpdateDocumentsPrintedCommandHandler,
	updateDocumentsPrintedByWarehouseHandler commands.UpdateDocumentsPrintedByWarehouseCommandHandler,
	getOrderHeaderHandler queries.GetOrderHeaderQueryHandler,
	listUnprintedOrdersHandler queries.ListUnprintedOrdersQueryHandler,
	defaultCompany int,
) *Server {
	return &Server{
		updateDocumentsPrintedHandler:            updateDocumentsPrintedHandler,
		updateDocumentsPrintedByWarehouseHandler: updateDocumentsPrintedByWarehouseHandler,
		getOrderHeaderHandler:                    getOrderHeaderHandler,
		listUnprintedOrdersHandler:               listUnprintedOrdersHandler,
		defaultCompany:                           defaultCompany,
	}
}

// UpdateDocumentsPrinted handles POST /api/v1/order-headers/documents-printed.
func (s *Server) UpdateDocumentsPrinted(ctx echo.Context) error {
	session, err := s.sessionFromRequest(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    businessErrorCode,
			Message: "Missing user identity",
		})
	}

	var request servers.UpdateDocumentsPrintedRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    businessErrorCode,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateDocumentsPrintedCommand(
		stringValue(request.CONO),
		stringValue(request.FACI),
		stringValue(request.PRNO),
		stringValue(request.MFNO),
		stringValue(request.WODP),
		session,
	)
	if err != nil {
		return writeBusinessError(ctx, err)
	}

	if err = s.updateDocumentsPrintedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeBusinessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDocumentsPrintedByWarehouse handles
// POST /api/v1/order-headers/documents-printed/by-warehouse.
func (s *Server) UpdateDocumentsPrintedByWarehouse(ctx echo.Context) error {
	session, err := s.sessionFromRequest(ctx)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    businessErrorCode,
			Message: "Missing user identity",
		})
	}

	var request servers.UpdateDocumentsPrintedByWarehouseRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    businessErrorCode,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateDocumentsPrintedByWarehouseCommand(
		stringValue(request.CONO),
		stringValue(request.WHLO),
		stringValue(request.PRNO),
		stringValue(request.MFNO),
		stringValue(request.WODP),
		session,
	)
	if err != nil {
		return writeBusinessError(ctx, err)
	}

	if err = s.updateDocumentsPrintedByWarehouseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeBusinessError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderHeader handles
// GET /api/v1/order-headers/{company}/{facility}/{productCode}/{orderNumber}.
func (s *Server) GetOrderHeader(
	ctx echo.Context,
	company int,
	facility string,
	productCode string,
	orderNumber string,
) error {
	query, err := queries.NewGetOrderHeaderQuery(company, facility, productCode, orderNumber)
	if err != nil {
		return writeBusinessError(ctx, err)
	}

	header, err := s.getOrderHeaderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    businessErrorCode,
				Message: err.Error(),
			})
		}

		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    businessErrorCode,
			Message: "Failed to retrieve order header",
		})
	}

	return ctx.JSON(http.StatusOK, servers.OrderHeader{
		Company:              header.Company,
		Facility:             header.Facility,
		ProductCode:          header.ProductCode,
		OrderNumber:          header.OrderNumber,
		OrderStatus:          header.OrderStatus,
		OrderedQuantity:      header.OrderedQuantity,
		DocumentsPrinted:     header.DocumentsPrinted,
		LastModifiedDate:     header.LastModifiedDate,
		ChangeSequenceNumber: header.ChangeSequence,
		ChangedByUser:        header.ChangedBy,
	})
}

// ListUnprintedOrderHeaders handles GET /api/v1/order-headers/unprinted.
func (s *Server) ListUnprintedOrderHeaders(
	ctx echo.Context,
	params servers.ListUnprintedOrderHeadersParams,
) error {
	company := s.defaultCompany
	if params.Company != nil {
		company = *params.Company
	}

	limit := defaultUnprintedLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListUnprintedOrdersQuery(company, params.Facility, limit)
	if err != nil {
		return writeBusinessError(ctx, err)
	}

	headers, err := s.listUnprintedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    businessErrorCode,
			Message: "Failed to retrieve unprinted order headers",
		})
	}

	response := make([]servers.UnprintedOrder, len(headers))
	for i, header := range headers {
		response[i] = servers.UnprintedOrder{
			Company:         header.Company,
			Facility:        header.Facility,
			ProductCode:     header.ProductCode,
			OrderNumber:     header.OrderNumber,
			OrderStatus:     header.OrderStatus,
			OrderedQuantity: header.OrderedQuantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// sessionFromRequest builds the caller's session from the gateway-set identity
// header and the configured default company.
func (s *Server) sessionFromRequest(ctx echo.Context) (kernel.Session, error) {
	user := ctx.Request().Header.Get(userIDHeader)
	if user == "" {
		return kernel.Session{}, errs.NewValueIsRequiredError("user")
	}

	return kernel.NewSession(s.defaultCompany, user)
}

// writeBusinessError maps a command or query error onto the wire: validation
// errors carry the wire field name and a 400, an unresolved warehouse carries
// the upstream message verbatim and a 404, and a failed update is a generic
// 409 with no field attribution so store-level causes stay hidden.
func writeBusinessError(ctx echo.Context, err error) error {
	if errors.Is(err, commands.ErrUpdateFailed) {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    businessErrorCode,
			Message: "Failed to update order header",
		})
	}

	var resolutionErr *ports.FacilityResolutionError
	if errors.As(err, &resolutionErr) {
		field := wireFieldNames["warehouse"]
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    businessErrorCode,
			Field:   &field,
			Message: resolutionErr.Error(),
		})
	}

	if paramName, ok := validationParamName(err); ok {
		response := servers.Error{
			Code:    businessErrorCode,
			Message: err.Error(),
		}
		if field, known := wireFieldNames[paramName]; known {
			response.Field = &field
		}

		return ctx.JSON(http.StatusBadRequest, response)
	}

	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    businessErrorCode,
		Message: "Internal error",
	})
}

// validationParamName extracts the canonical parameter name from a validation
// error, when the error carries one.
func validationParamName(err error) (string, bool) {
	var invalidErr *errs.ValueIsInvalidError
	if errors.As(err, &invalidErr) {
		return invalidErr.ParamName, true
	}

	var requiredErr *errs.ValueIsRequiredError
	if errors.As(err, &requiredErr) {
		return requiredErr.ParamName, true
	}

	var outOfRangeErr *errs.ValueIsOutOfRangeError
	if errors.As(err, &outOfRangeErr) {
		return outOfRangeErr.ParamName, true
	}

	return "", false
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
