package commands

import (
	"context"
)

// RestartDisputedOrderCommandHandler moves a disputed order back to created,
// optionally cancelling the open invoice in the same operation.
type RestartDisputedOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRestartDisputedOrderCommandHandler creates a handler for disputed
// order restarts.
func NewRestartDisputedOrderCommandHandler(uowFactory OrderUoWFactory) RestartDisputedOrderCommandHandler {
	return RestartDisputedOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restart command.
func (h *RestartDisputedOrderCommandHandler) Handle(ctx context.Context, cmd RestartDisputedOrderCommand) error {
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

	if err = aggregate.RestartDisputed(cmd.CancelInvoice()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
