package commands

import (
	"context"
	"fmt"
	"log/slog"

	"mfgorder/internal/core/domain/model/kernel"
	"mfgorder/internal/core/ports"
)

// UpdateDocumentsPrintedByWarehouseCommandHandler performs the locked
// single-record update for the indirect variant: the warehouse code is first
// resolved to a facility through the external lookup, then the update runs
// exactly as in the direct variant.
type UpdateDocumentsPrintedByWarehouseCommandHandler struct {
	uowFactory OrderHeaderUoWFactory
	resolver   ports.FacilityResolver
	clock      ports.Clock
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewUpdateDocumentsPrintedByWarehouseCommandHandler creates a handler for the
// indirect update variant.
func NewUpdateDocumentsPrintedByWarehouseCommandHandler(
	uowFactory OrderHeaderUoWFactory,
	resolver ports.FacilityResolver,
	clock ports.Clock,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) UpdateDocumentsPrintedByWarehouseCommandHandler {
	return UpdateDocumentsPrintedByWarehouseCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		clock:      clock,
		publisher:  publisher,
		logger:     logger.With("component", "update_documents_printed_by_warehouse_handler"),
	}
}

// Handle resolves the warehouse to its facility, then mutates the header
// under the store's row lock.
//
// A resolution failure propagates as-is — its message is the lookup service's
// message, surfaced verbatim — and the store is never touched. A lookup that
// "succeeds" with no facility is treated as an explicit resolution error
// rather than letting a blank facility flow into the key.
func (h *UpdateDocumentsPrintedByWarehouseCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDocumentsPrintedByWarehouseCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.logger.DebugContext(ctx, "Updating documents printed flag by warehouse", "params", cmd)

	facility, err := h.resolver.ResolveFacility(ctx, cmd.Warehouse())
	if err != nil {
		return err
	}

	if facility == "" {
		return ports.NewFacilityResolutionError(
			cmd.Warehouse(),
			fmt.Sprintf("no facility found for warehouse %s", cmd.Warehouse()),
		)
	}

	key, err := kernel.NewOrderKey(cmd.Company(), facility, cmd.ProductCode(), cmd.OrderNumber())
	if err != nil {
		return err
	}

	event, err := setDocumentsPrintedUnderLock(
		ctx, h.uowFactory, key, cmd.DocumentsPrinted(), h.clock.Today(), cmd.ChangedBy())
	if err != nil {
		h.logger.ErrorContext(ctx, "Order header update failed", "key", key.String(), "error", err)
		return ErrUpdateFailed
	}

	if err = h.publisher.PublishDocumentsPrinted(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "Failed to publish documents printed event",
			"key", key.String(), "error", err)
	}

	return nil
}
