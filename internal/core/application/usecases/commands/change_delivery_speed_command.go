package commands

import (
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/pkg/guard"
)

var ErrChangeDeliverySpeedCommandIsNotConstructed = errors.New(
	"ChangeDeliverySpeedCommand must be created via NewChangeDeliverySpeedCommand constructor",
)

// ChangeDeliverySpeedCommand requests a different service level for an order.
type ChangeDeliverySpeedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	speed   order.DeliverySpeed
	actor   Actor

	guard guard.ConstructorGuard
}

// NewChangeDeliverySpeedCommand creates a command to change the delivery
// speed of the given order.
func NewChangeDeliverySpeedCommand(
	orderID kernel.UUID,
	speed order.DeliverySpeed,
	actor Actor,
) (ChangeDeliverySpeedCommand, error) {
	if err := errors.Join(orderID.Validate(), speed.Validate(), actor.Validate()); err != nil {
		return ChangeDeliverySpeedCommand{}, err
	}

	return ChangeDeliverySpeedCommand{
		orderID: orderID,
		speed:   speed,
		actor:   actor,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDeliverySpeedCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeliverySpeedCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ChangeDeliverySpeedCommand) OrderID() kernel.UUID { return c.orderID }

// Speed returns the requested service level.
func (c ChangeDeliverySpeedCommand) Speed() order.DeliverySpeed { return c.speed }

// Actor returns who requested the change.
func (c ChangeDeliverySpeedCommand) Actor() Actor { return c.actor }
