package ports

import (
	"context"

	"mfgorder/internal/core/domain/model/orderhead"
)

// OrderEventPublisher publishes order header events to downstream consumers.
// Publishing happens after the update committed; a publish failure never
// unwinds the committed change.
type OrderEventPublisher interface {
	PublishDocumentsPrinted(ctx context.Context, event orderhead.DocumentsPrintedEvent) error
}
