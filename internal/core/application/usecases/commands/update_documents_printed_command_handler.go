package commands

import (
	"context"
	"errors"
	"log/slog"

	"mfgorder/internal/core/domain/model/kernel"
	"mfgorder/internal/core/ports"
)

// ErrUpdateFailed is the single generic failure of the locked update. Whether
// the key matched no record, the row lock could not be taken or the commit
// failed is not distinguished at this layer; the store's reason goes to the
// log, never to the caller.
var ErrUpdateFailed = errors.New("manufacturing order header update failed")

// UpdateDocumentsPrintedCommandHandler performs the locked single-record
// update for the direct variant, where the caller supplies the facility.
//
// Example:
//
//	handler := NewUpdateDocumentsPrintedCommandHandler(uowFactory, clock, publisher, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to update order header: %w", err)
//	}
type UpdateDocumentsPrintedCommandHandler struct {
	uowFactory OrderHeaderUoWFactory
	clock      ports.Clock
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewUpdateDocumentsPrintedCommandHandler creates a handler for the direct
// update variant.
func NewUpdateDocumentsPrintedCommandHandler(
	uowFactory OrderHeaderUoWFactory,
	clock ports.Clock,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) UpdateDocumentsPrintedCommandHandler {
	return UpdateDocumentsPrintedCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		publisher:  publisher,
		logger:     logger.With("component", "update_documents_printed_handler"),
	}
}

// Handle processes the update command: build the composite key from the
// canonical parameters, then mutate the header under the store's row lock.
// Every store-level failure collapses into ErrUpdateFailed. On success the
// documents-printed event is published best-effort; a publish failure is
// logged but does not fail the committed update.
func (h *UpdateDocumentsPrintedCommandHandler) Handle(ctx context.Context, cmd UpdateDocumentsPrintedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.logger.DebugContext(ctx, "Updating documents printed flag", "params", cmd)

	key, err := kernel.NewOrderKey(cmd.Company(), cmd.Facility(), cmd.ProductCode(), cmd.OrderNumber())
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
