package commands

import (
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/pkg/guard"
)

var ErrRestartOrderCommandIsNotConstructed = errors.New(
	"RestartOrderCommand must be created via NewRestartOrderCommand constructor",
)

// RestartOrderCommand requests that a waiting order be moved back to
// created. With cancelInvoice set the open invoice is cancelled in the same
// all-or-nothing operation.
type RestartOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	cancelInvoice bool

	guard guard.ConstructorGuard
}

// NewRestartOrderCommand creates a command to restart the given order.
func NewRestartOrderCommand(orderID kernel.UUID, cancelInvoice bool) (RestartOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RestartOrderCommand{}, err
	}

	return RestartOrderCommand{
		orderID:       orderID,
		cancelInvoice: cancelInvoice,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RestartOrderCommand) Validate() error {
	return c.guard.Validate(ErrRestartOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RestartOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CancelInvoice reports whether the open invoice is cancelled together with
// the restart.
func (c RestartOrderCommand) CancelInvoice() bool { return c.cancelInvoice }
