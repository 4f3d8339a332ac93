package commands

import (
	"context"
)

// PerformItemTransactionCommandHandler runs a guarded item transaction
// against selected items and persists the outcome.
type PerformItemTransactionCommandHandler struct {
	uowFactory UoWFactory
}

// NewPerformItemTransactionCommandHandler creates a handler for generic
// item transactions.
func NewPerformItemTransactionCommandHandler(uowFactory UoWFactory) PerformItemTransactionCommandHandler {
	return PerformItemTransactionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item transaction command.
func (h *PerformItemTransactionCommandHandler) Handle(ctx context.Context, cmd PerformItemTransactionCommand) error {
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

	orderRepo := uow.OrderRepository()
	itemRepo := uow.ItemRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	items, err := itemRepo.GetForOrder(ctx, cmd.OrderID(), cmd.ItemIDs())
	if err != nil {
		return err
	}

	if err = aggregate.PerformItemTransaction(cmd.Transaction(), items); err != nil {
		return err
	}

	if err = itemRepo.UpdateAll(ctx, aggregate.ID(), items); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
