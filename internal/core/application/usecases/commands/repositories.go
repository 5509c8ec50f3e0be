// Package commands contains the business operations that modify return
// requests: creation, reason edits, status transitions, and the staff
// order-reference correction. Every handler follows the same pattern:
// command validation, transaction management, aggregate mutation,
// persistence, and (where the lifecycle demands it) a best-effort
// notification after commit.
package commands

import (
	"context"

	"returns/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers, consumer-side so handlers can be tested against mocks.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RequestRepoFactory provides access to the request repository within
	// a transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// RequestUoW manages transactions over request aggregates.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
	}

	// RequestUoWFactory creates new unit of work instances.
	RequestUoWFactory interface {
		Create() RequestUoW
	}
)
