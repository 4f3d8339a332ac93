package commands

import (
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/status"
	"salesorders/internal/pkg/guard"
)

var ErrPerformOrderTransactionCommandIsNotConstructed = errors.New(
	"PerformOrderTransactionCommand must be created via NewPerformOrderTransactionCommand constructor",
)

// PerformOrderTransactionCommand requests a generic order-scoped transaction
// against an order's status records. Transactions with dedicated operations
// (cancel, restart) are rejected by the aggregate.
type PerformOrderTransactionCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	transaction status.Transaction

	guard guard.ConstructorGuard
}

// NewPerformOrderTransactionCommand creates a command to run the given
// order-scoped transaction. The transaction must be a known order-scoped one.
func NewPerformOrderTransactionCommand(
	orderID kernel.UUID,
	transaction status.Transaction,
) (PerformOrderTransactionCommand, error) {
	cmd := PerformOrderTransactionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTransaction(transaction),
	); err != nil {
		return PerformOrderTransactionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PerformOrderTransactionCommand) Validate() error {
	return c.guard.Validate(ErrPerformOrderTransactionCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c PerformOrderTransactionCommand) OrderID() kernel.UUID { return c.orderID }

// Transaction returns the transaction to run.
func (c PerformOrderTransactionCommand) Transaction() status.Transaction { return c.transaction }

func (c *PerformOrderTransactionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PerformOrderTransactionCommand) setTransaction(transaction status.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}
	c.transaction = transaction
	return nil
}
