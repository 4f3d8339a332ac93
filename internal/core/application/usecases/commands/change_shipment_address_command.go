package commands

import (
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/pkg/guard"
)

var ErrChangeShipmentAddressCommandIsNotConstructed = errors.New(
	"ChangeShipmentAddressCommand must be created via NewChangeShipmentAddressCommand constructor",
)

// ChangeShipmentAddressCommand requests replacement of an order's shipment
// address. Whether the change is allowed depends on the actor and the
// order's active statuses.
type ChangeShipmentAddressCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	address AddressInput
	actor   Actor

	guard guard.ConstructorGuard
}

// NewChangeShipmentAddressCommand creates a command to replace the shipment
// address of the given order.
func NewChangeShipmentAddressCommand(
	orderID kernel.UUID,
	address AddressInput,
	actor Actor,
) (ChangeShipmentAddressCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return ChangeShipmentAddressCommand{}, err
	}

	return ChangeShipmentAddressCommand{
		orderID: orderID,
		address: address,
		actor:   actor,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeShipmentAddressCommand) Validate() error {
	return c.guard.Validate(ErrChangeShipmentAddressCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ChangeShipmentAddressCommand) OrderID() kernel.UUID { return c.orderID }

// Address returns the raw replacement address fields.
func (c ChangeShipmentAddressCommand) Address() AddressInput { return c.address }

// Actor returns who requested the change.
func (c ChangeShipmentAddressCommand) Actor() Actor { return c.actor }
