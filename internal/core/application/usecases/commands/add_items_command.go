package commands

import (
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/pkg/errs"
	"salesorders/internal/pkg/guard"
)

var ErrAddItemsCommandIsNotConstructed = errors.New(
	"AddItemsCommand must be created via NewAddItemsCommand constructor",
)

// AddItemsCommand requests that new items be appended to an existing order.
type AddItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	items   []ItemInput
	actor   Actor

	guard guard.ConstructorGuard
}

// NewAddItemsCommand creates a command to append the given items to an
// order. At least one item is required.
func NewAddItemsCommand(orderID kernel.UUID, items []ItemInput, actor Actor) (AddItemsCommand, error) {
	cmd := AddItemsCommand{
		items: items,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.checkItems(items),
	); err != nil {
		return AddItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemsCommand) Validate() error {
	return c.guard.Validate(ErrAddItemsCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AddItemsCommand) OrderID() kernel.UUID { return c.orderID }

// Items returns the requested new order lines.
func (c AddItemsCommand) Items() []ItemInput { return c.items }

// Actor returns who requested the change.
func (c AddItemsCommand) Actor() Actor { return c.actor }

func (c *AddItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddItemsCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *AddItemsCommand) checkItems(items []ItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	return nil
}
