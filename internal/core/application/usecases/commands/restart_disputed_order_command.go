package commands

import (
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/pkg/guard"
)

var ErrRestartDisputedOrderCommandIsNotConstructed = errors.New(
	"RestartDisputedOrderCommand must be created via NewRestartDisputedOrderCommand constructor",
)

// RestartDisputedOrderCommand requests that a disputed order be moved back
// to created, clearing the dispute. With cancelInvoice set the open invoice
// is cancelled in the same all-or-nothing operation.
type RestartDisputedOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	cancelInvoice bool

	guard guard.ConstructorGuard
}

// NewRestartDisputedOrderCommand creates a command to restart the given
// disputed order.
func NewRestartDisputedOrderCommand(orderID kernel.UUID, cancelInvoice bool) (RestartDisputedOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RestartDisputedOrderCommand{}, err
	}

	return RestartDisputedOrderCommand{
		orderID:       orderID,
		cancelInvoice: cancelInvoice,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RestartDisputedOrderCommand) Validate() error {
	return c.guard.Validate(ErrRestartDisputedOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RestartDisputedOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CancelInvoice reports whether the open invoice is cancelled together with
// the restart.
func (c RestartDisputedOrderCommand) CancelInvoice() bool { return c.cancelInvoice }
