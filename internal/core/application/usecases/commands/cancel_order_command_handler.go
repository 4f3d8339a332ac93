package commands

import (
	"context"
)

// CancelOrderCommandHandler cancels an order and cascades the cancellation
// to all of its open items in a single transaction.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	aggregate, err := orderRepo.GetWithItems(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = checkOwnership(aggregate, cmd.Actor()); err != nil {
		return err
	}

	if err = aggregate.Cancel(cmd.Actor().System(), aggregate.Items()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.ItemRepository().UpdateAll(ctx, aggregate.ID(), aggregate.Items()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
