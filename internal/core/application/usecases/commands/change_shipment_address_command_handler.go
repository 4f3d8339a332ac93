package commands

import (
	"context"

	"salesorders/internal/core/domain/model/order"
)

// ChangeShipmentAddressCommandHandler replaces an order's shipment address
// after the actor's change permission passes the order's guards.
type ChangeShipmentAddressCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeShipmentAddressCommandHandler creates a handler for address changes.
func NewChangeShipmentAddressCommandHandler(uowFactory OrderUoWFactory) ChangeShipmentAddressCommandHandler {
	return ChangeShipmentAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the address change command.
func (h *ChangeShipmentAddressCommandHandler) Handle(ctx context.Context, cmd ChangeShipmentAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	in := cmd.Address()
	address, err := order.NewShipmentAddress(
		in.RecipientName, in.CompanyName, in.PhoneNumber,
		in.StreetLine1, in.StreetLine2, in.City,
		in.StateOrProvince, in.PostalCode, in.Country, in.Landmark,
	)
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

	if err = aggregate.ChangeShipmentAddress(address, cmd.Actor().System()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
