package commands

import (
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/pkg/errs"
	"salesorders/internal/pkg/guard"
)

var ErrBackorderItemsCommandIsNotConstructed = errors.New(
	"BackorderItemsCommand must be created via NewBackorderItemsCommand constructor",
)

// BackorderLineInput names one item to move to backorder and the quantity
// that could not be fulfilled.
type BackorderLineInput struct {
	ItemID   kernel.UUID
	Quantity int64
}

// BackorderItemsCommand requests that the listed items of an order be moved
// to backorder. Backordering is a system operation driven by fulfillment.
type BackorderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	lines   []BackorderLineInput

	guard guard.ConstructorGuard
}

// NewBackorderItemsCommand creates a command to backorder the given items.
// At least one line is required and every line needs a valid item id;
// quantity bounds are enforced by the domain.
func NewBackorderItemsCommand(orderID kernel.UUID, lines []BackorderLineInput) (BackorderItemsCommand, error) {
	cmd := BackorderItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLines(lines),
	); err != nil {
		return BackorderItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BackorderItemsCommand) Validate() error {
	return c.guard.Validate(ErrBackorderItemsCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c BackorderItemsCommand) OrderID() kernel.UUID { return c.orderID }

// Lines returns the items and quantities to backorder.
func (c BackorderItemsCommand) Lines() []BackorderLineInput { return c.lines }

func (c *BackorderItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *BackorderItemsCommand) setLines(lines []BackorderLineInput) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("backorder lines")
	}
	for _, line := range lines {
		if err := line.ItemID.Validate(); err != nil {
			return err
		}
	}
	c.lines = lines
	return nil
}
