// Package kernel provides core domain primitives for the manufacturing order system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - OrderKey: A value object for the composite identity of a manufacturing order header
//   - CalendarDate: A value object for dates in the store's 8-digit YYYYMMDD form
//   - Session: A value object carrying the caller's default company and user identity
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
