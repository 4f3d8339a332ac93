package commands

import (
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/pkg/guard"
)

var ErrChangeRecurrenceCommandIsNotConstructed = errors.New(
	"ChangeRecurrenceCommand must be created via NewChangeRecurrenceCommand constructor",
)

// ChangeRecurrenceCommand requests a different recurrence schedule for a
// recurrent order. Orders in transit keep their current schedule.
type ChangeRecurrenceCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	recurrence RecurrenceInput
	actor      Actor

	guard guard.ConstructorGuard
}

// NewChangeRecurrenceCommand creates a command to replace the recurrence
// schedule of the given order.
func NewChangeRecurrenceCommand(
	orderID kernel.UUID,
	recurrence RecurrenceInput,
	actor Actor,
) (ChangeRecurrenceCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return ChangeRecurrenceCommand{}, err
	}

	return ChangeRecurrenceCommand{
		orderID:    orderID,
		recurrence: recurrence,
		actor:      actor,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeRecurrenceCommand) Validate() error {
	return c.guard.Validate(ErrChangeRecurrenceCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ChangeRecurrenceCommand) OrderID() kernel.UUID { return c.orderID }

// Recurrence returns the raw replacement schedule.
func (c ChangeRecurrenceCommand) Recurrence() RecurrenceInput { return c.recurrence }

// Actor returns who requested the change.
func (c ChangeRecurrenceCommand) Actor() Actor { return c.actor }
