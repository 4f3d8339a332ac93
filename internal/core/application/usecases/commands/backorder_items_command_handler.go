package commands

import (
	"context"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
)

// BackorderItemsCommandHandler moves items of an order to backorder,
// attaching the unfulfilled quantity to each.
type BackorderItemsCommandHandler struct {
	uowFactory UoWFactory
}

// NewBackorderItemsCommandHandler creates a handler for backorder requests.
func NewBackorderItemsCommandHandler(uowFactory UoWFactory) BackorderItemsCommandHandler {
	return BackorderItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the backorder command.
func (h *BackorderItemsCommandHandler) Handle(ctx context.Context, cmd BackorderItemsCommand) error {
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

	itemIDs := make([]kernel.UUID, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		itemIDs = append(itemIDs, line.ItemID)
	}

	items, err := itemRepo.GetForOrder(ctx, cmd.OrderID(), itemIDs)
	if err != nil {
		return err
	}

	lines := make([]order.BackorderLine, 0, len(items))
	for i, item := range items {
		lines = append(lines, order.BackorderLine{Item: item, Quantity: cmd.Lines()[i].Quantity})
	}

	if err = aggregate.MoveItemsToBackorder(lines); err != nil {
		return err
	}

	if err = itemRepo.UpdateAll(ctx, aggregate.ID(), items); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
