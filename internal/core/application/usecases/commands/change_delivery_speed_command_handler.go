package commands

import (
	"context"
)

// ChangeDeliverySpeedCommandHandler changes an order's service level after
// the actor's change permission passes the order's guards.
type ChangeDeliverySpeedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeDeliverySpeedCommandHandler creates a handler for delivery speed changes.
func NewChangeDeliverySpeedCommandHandler(uowFactory OrderUoWFactory) ChangeDeliverySpeedCommandHandler {
	return ChangeDeliverySpeedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery speed change command.
func (h *ChangeDeliverySpeedCommandHandler) Handle(ctx context.Context, cmd ChangeDeliverySpeedCommand) error {
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
	if err = checkOwnership(aggregate, cmd.Actor()); err != nil {
		return err
	}

	if err = aggregate.ChangeDeliverySpeed(cmd.Speed(), cmd.Actor().System()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
