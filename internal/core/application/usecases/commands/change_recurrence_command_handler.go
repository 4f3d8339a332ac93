package commands

import (
	"context"

	"salesorders/internal/core/domain/model/order"
)

// ChangeRecurrenceCommandHandler replaces the recurrence schedule of a
// recurrent order after the actor's change permission passes the guards.
type ChangeRecurrenceCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeRecurrenceCommandHandler creates a handler for recurrence changes.
func NewChangeRecurrenceCommandHandler(uowFactory OrderUoWFactory) ChangeRecurrenceCommandHandler {
	return ChangeRecurrenceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the recurrence change command.
func (h *ChangeRecurrenceCommandHandler) Handle(ctx context.Context, cmd ChangeRecurrenceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	in := cmd.Recurrence()
	spec, err := order.NewRecurrenceSpec(in.Installments, in.GapInDays, in.RequestedOffsetDays)
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

	if err = aggregate.ChangeRecurrence(spec, cmd.Actor().System()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
