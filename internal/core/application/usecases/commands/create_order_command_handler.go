package commands

import (
	"context"

	"salesorders/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Builds the aggregate from the raw command inputs, seeds the initial status
// records from the screening flags, and persists everything in one
// transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := buildOrder(cmd)
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

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func buildOrder(cmd CreateOrderCommand) (*order.Order, error) {
	in := cmd.Address()
	address, err := order.NewShipmentAddress(
		in.RecipientName, in.CompanyName, in.PhoneNumber,
		in.StreetLine1, in.StreetLine2, in.City,
		in.StateOrProvince, in.PostalCode, in.Country, in.Landmark,
	)
	if err != nil {
		return nil, err
	}

	var recurrence *order.RecurrenceSpec
	if r := cmd.Recurrence(); r != nil {
		spec, err := order.NewRecurrenceSpec(r.Installments, r.GapInDays, r.RequestedOffsetDays)
		if err != nil {
			return nil, err
		}
		recurrence = &spec
	}

	items, err := buildItems(cmd.Items())
	if err != nil {
		return nil, err
	}

	return order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(), cmd.CustomerName(),
		cmd.Speed(), cmd.Recurrent(), address, recurrence,
		items, cmd.Flags(),
	)
}

func buildItems(inputs []ItemInput) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(inputs))
	for _, in := range inputs {
		item, err := order.NewItem(in.ID, in.VendorID, in.ProductID, in.Name,
			in.Quantity, in.UnitPriceCents, in.DiscountBps)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
