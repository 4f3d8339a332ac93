package commands

import (
	"context"
	"log/slog"
)

// CancelOrderItemsCommandHandler cancels selected items of an order. When
// the last open item gets cancelled the order header is cancelled too, in
// the same transaction.
type CancelOrderItemsCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderItemsCommandHandler creates a handler for item cancellation.
func NewCancelOrderItemsCommandHandler(uowFactory UoWFactory) CancelOrderItemsCommandHandler {
	return CancelOrderItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item cancellation command.
func (h *CancelOrderItemsCommandHandler) Handle(ctx context.Context, cmd CancelOrderItemsCommand) error {
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
	if err = checkOwnership(aggregate, cmd.Actor()); err != nil {
		return err
	}

	items, err := itemRepo.GetForOrder(ctx, cmd.OrderID(), cmd.ItemIDs())
	if err != nil {
		return err
	}

	if err = aggregate.CancelItems(cmd.Actor().System(), items); err != nil {
		return err
	}
	if err = itemRepo.UpdateAll(ctx, aggregate.ID(), items); err != nil {
		return err
	}

	open, err := itemRepo.CountOpen(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if open == 0 {
		slog.Info("all items cancelled, cancelling order", "order_id", cmd.OrderID())
		if err = aggregate.MarkCancelled(); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
