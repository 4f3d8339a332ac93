package ports

import (
	"context"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
)

// ItemRepository defines the persistence contract for order items addressed
// independently of their aggregate. Item writes always happen inside the
// same transaction as the owning order's update.
type ItemRepository interface {
	// GetForOrder retrieves exactly the requested items of the given
	// order, in the order the ids were given. Any id that does not
	// resolve to an item of that order makes the whole call fail with a
	// not found error.
	GetForOrder(ctx context.Context, orderID kernel.UUID, itemIDs []kernel.UUID) ([]*order.Item, error)

	// UpdateAll persists status and backorder changes for the given items.
	UpdateAll(ctx context.Context, orderID kernel.UUID, items []*order.Item) error

	// CountOpen returns the number of the order's items that are not
	// cancelled. Used to decide whether cancelling the last open items
	// must cancel the whole order.
	CountOpen(ctx context.Context, orderID kernel.UUID) (int64, error)
}
