// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"mfgorder/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderHeaderRepoFactory provides access to the order header repository within a transaction.
	OrderHeaderRepoFactory interface {
		OrderHeaderRepository() ports.OrderHeaderRepository
	}

	// OrderHeaderUoW manages transactions for order header operations.
	// The repository it hands out runs inside the transaction started by Begin,
	// which is what makes GetForUpdate's row lock span read through commit.
	OrderHeaderUoW interface {
		TxManager
		OrderHeaderRepoFactory
	}

	// OrderHeaderUoWFactory creates new order header unit of work instances.
	OrderHeaderUoWFactory interface {
		Create() OrderHeaderUoW
	}
)
