package ports

import (
	"context"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders can be loaded at different depths: header with statuses only for
// pure status transitions, or with items for cascading operations.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items and
	// seeded status records.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The stored
	// row's version must match the aggregate's; a mismatch fails with a
	// version error without writing anything.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order header with its status records. Items are
	// not loaded.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetWithItems retrieves an order together with all of its items.
	GetWithItems(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
