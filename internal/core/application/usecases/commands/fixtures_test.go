package commands_test

import (
	"testing"

	"salesorders/internal/core/application/usecases/commands"
	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func addressInput() commands.AddressInput {
	return commands.AddressInput{
		RecipientName:   "Jordan Miles",
		PhoneNumber:     "+1-555-0100",
		StreetLine1:     "12 Harbor Way",
		City:            "Portland",
		StateOrProvince: "OR",
		PostalCode:      "97201",
		Country:         "US",
	}
}

func itemInputs() []commands.ItemInput {
	return []commands.ItemInput{
		{
			ID:             kernel.NewUUID(),
			VendorID:       kernel.NewUUID(),
			ProductID:      kernel.NewUUID(),
			Name:           "Standing Desk",
			Quantity:       1,
			UnitPriceCents: 49900,
		},
	}
}

func domainAddress(t *testing.T) order.ShipmentAddress {
	t.Helper()

	address, err := order.NewShipmentAddress(
		"Jordan Miles", "", "+1-555-0100",
		"12 Harbor Way", "", "Portland", "OR", "97201", "US", "",
	)
	require.NoError(t, err)
	return address
}

func domainItem(t *testing.T) *order.Item {
	t.Helper()

	item, err := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Standing Desk", 1, 49900, 0,
	)
	require.NoError(t, err)
	return item
}

func storedOrder(t *testing.T, customerID kernel.UUID, items []*order.Item) *order.Order {
	t.Helper()

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), customerID, "Jordan Miles",
		order.SpeedNormal, false, domainAddress(t), nil,
		items, order.CreationFlags{},
	)
	require.NoError(t, err)
	return aggregate
}

func storedRecurrentOrder(t *testing.T, customerID kernel.UUID, items []*order.Item) *order.Order {
	t.Helper()

	spec, err := order.NewRecurrenceSpec(6, 30, 0)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), customerID, "Jordan Miles",
		order.SpeedNormal, true, domainAddress(t), &spec,
		items, order.CreationFlags{},
	)
	require.NoError(t, err)
	return aggregate
}
