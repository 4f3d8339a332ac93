package commands

import (
	"context"
)

// AddItemsCommandHandler appends new items to an order after the actor's
// change permission passes the order's guards.
type AddItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddItemsCommandHandler creates a handler for adding items.
func NewAddItemsCommandHandler(uowFactory OrderUoWFactory) AddItemsCommandHandler {
	return AddItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add items command.
func (h *AddItemsCommandHandler) Handle(ctx context.Context, cmd AddItemsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := buildItems(cmd.Items())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = aggregate.AddItems(items, cmd.Actor().System()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
