package commands

import (
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/pkg/errs"
	"salesorders/internal/pkg/guard"
)

var ErrCancelOrderItemsCommandIsNotConstructed = errors.New(
	"CancelOrderItemsCommand must be created via NewCancelOrderItemsCommand constructor",
)

// CancelOrderItemsCommand requests cancellation of selected items of an
// order. Cancelling the last open items cancels the order itself.
type CancelOrderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemIDs []kernel.UUID
	actor   Actor

	guard guard.ConstructorGuard
}

// NewCancelOrderItemsCommand creates a command to cancel the given items on
// behalf of the given actor. At least one item id is required.
func NewCancelOrderItemsCommand(
	orderID kernel.UUID,
	itemIDs []kernel.UUID,
	actor Actor,
) (CancelOrderItemsCommand, error) {
	cmd := CancelOrderItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemIDs(itemIDs),
		cmd.setActor(actor),
	); err != nil {
		return CancelOrderItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderItemsCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c CancelOrderItemsCommand) OrderID() kernel.UUID { return c.orderID }

// ItemIDs returns the identifiers of the items to cancel.
func (c CancelOrderItemsCommand) ItemIDs() []kernel.UUID { return c.itemIDs }

// Actor returns who requested the cancellation.
func (c CancelOrderItemsCommand) Actor() Actor { return c.actor }

func (c *CancelOrderItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CancelOrderItemsCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return errs.NewValueIsRequiredError("item ids")
	}
	for _, id := range itemIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.itemIDs = itemIDs
	return nil
}

func (c *CancelOrderItemsCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
