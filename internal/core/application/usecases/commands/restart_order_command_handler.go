package commands

import (
	"context"
)

// RestartOrderCommandHandler moves a waiting order back to created,
// optionally cancelling the open invoice in the same operation.
type RestartOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRestartOrderCommandHandler creates a handler for order restarts.
func NewRestartOrderCommandHandler(uowFactory OrderUoWFactory) RestartOrderCommandHandler {
	return RestartOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restart command.
func (h *RestartOrderCommandHandler) Handle(ctx context.Context, cmd RestartOrderCommand) error {
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

	if err = aggregate.Restart(cmd.CancelInvoice()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
