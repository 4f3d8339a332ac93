package commands

import (
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/status"
	"salesorders/internal/pkg/errs"
	"salesorders/internal/pkg/guard"
)

var ErrPerformItemTransactionCommandIsNotConstructed = errors.New(
	"PerformItemTransactionCommand must be created via NewPerformItemTransactionCommand constructor",
)

// PerformItemTransactionCommand requests a generic item-scoped transaction
// against selected items of an order. The owning order's guards are checked
// before any item changes.
type PerformItemTransactionCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	itemIDs     []kernel.UUID
	transaction status.Transaction

	guard guard.ConstructorGuard
}

// NewPerformItemTransactionCommand creates a command to run the given
// item-scoped transaction against the listed items.
func NewPerformItemTransactionCommand(
	orderID kernel.UUID,
	itemIDs []kernel.UUID,
	transaction status.Transaction,
) (PerformItemTransactionCommand, error) {
	cmd := PerformItemTransactionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemIDs(itemIDs),
		cmd.setTransaction(transaction),
	); err != nil {
		return PerformItemTransactionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PerformItemTransactionCommand) Validate() error {
	return c.guard.Validate(ErrPerformItemTransactionCommandIsNotConstructed)
}

// OrderID returns the owning order's identifier.
func (c PerformItemTransactionCommand) OrderID() kernel.UUID { return c.orderID }

// ItemIDs returns the identifiers of the target items.
func (c PerformItemTransactionCommand) ItemIDs() []kernel.UUID { return c.itemIDs }

// Transaction returns the transaction to run.
func (c PerformItemTransactionCommand) Transaction() status.Transaction { return c.transaction }

func (c *PerformItemTransactionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PerformItemTransactionCommand) setItemIDs(itemIDs []kernel.UUID) error {
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

func (c *PerformItemTransactionCommand) setTransaction(transaction status.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}
	c.transaction = transaction
	return nil
}
