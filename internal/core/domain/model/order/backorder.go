package order

import (
	"errors"

	"salesorders/internal/pkg/errs"
	"salesorders/internal/pkg/guard"
)

// ErrBackorderIsNotConstructed is returned when a Backorder was not created
// through the NewBackorder constructor.
var ErrBackorderIsNotConstructed = errors.New(
	"Backorder must be created via NewBackorder constructor",
)

// Backorder captures the quantity of an item that could not be fulfilled from
// stock. An item carries at most one backorder record; reordering the item
// clears it.
type Backorder struct {
	quantity int64

	guard guard.ConstructorGuard
}

// NewBackorder creates a backorder for the given quantity. The quantity must
// be positive.
func NewBackorder(quantity int64) (Backorder, error) {
	backorder := Backorder{
		quantity: quantity,

		guard: guard.NewConstructorGuard(),
	}

	if quantity <= 0 {
		return Backorder{}, errs.NewValueIsOutOfRangeError("backorder quantity", quantity, 1, "unbounded")
	}

	return backorder, nil
}

// RestoreBackorder reconstructs a backorder from persistence.
func RestoreBackorder(quantity int64) Backorder {
	return Backorder{
		quantity: quantity,

		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the backorder was created through the constructor.
func (b Backorder) Validate() error {
	return b.guard.Validate(ErrBackorderIsNotConstructed)
}

// Quantity returns the backordered quantity.
func (b Backorder) Quantity() int64 { return b.quantity }
