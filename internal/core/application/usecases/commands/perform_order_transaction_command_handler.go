package commands

import (
	"context"
)

// PerformOrderTransactionCommandHandler loads the order's status records,
// runs a single guarded transaction against them, and persists the outcome.
type PerformOrderTransactionCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPerformOrderTransactionCommandHandler creates a handler for generic
// order transactions.
func NewPerformOrderTransactionCommandHandler(uowFactory OrderUoWFactory) PerformOrderTransactionCommandHandler {
	return PerformOrderTransactionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transaction command.
func (h *PerformOrderTransactionCommandHandler) Handle(ctx context.Context, cmd PerformOrderTransactionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Perform(cmd.Transaction()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
