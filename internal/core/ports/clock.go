package ports

import (
	"mfgorder/internal/core/domain/model/kernel"
)

// Clock supplies the current date for audit stamps. Handlers take it as a
// collaborator instead of reading the system clock so that tests can pin dates.
type Clock interface {
	// Today returns the current date.
	Today() kernel.CalendarDate
}
