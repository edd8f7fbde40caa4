// Package orderhead provides the manufacturing order header aggregate and its
// supporting value objects.
//
// The package includes:
//   - Header: The aggregate root for a manufacturing order header record
//   - Status: The manufacturing order lifecycle state
//   - PrintedFlag: The documents-printed flag restricted to {0, 1}
//   - DocumentsPrintedEvent: A snapshot emitted after the flag is updated
//
// The aggregate owns the single mutation of this service: SetDocumentsPrinted,
// which stamps the audit fields and bumps the change sequence counter together
// with the flag so that the four fields always move as one.
package orderhead
