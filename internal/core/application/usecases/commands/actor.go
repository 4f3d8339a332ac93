package commands

import (
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// one of its constructors.
var ErrActorIsNotConstructed = errors.New(
	"Actor must be created via NewSystemActor or NewCustomerActor",
)

// Actor identifies who issues a command. System actors act on any order and
// are held to the system guard set; customer actors act only on their own
// orders and are held to the stricter customer guard set.
type Actor struct {
	system     bool
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSystemActor creates an actor for back-office and integration calls.
func NewSystemActor() Actor {
	return Actor{
		system: true,

		guard: guard.NewConstructorGuard(),
	}
}

// NewCustomerActor creates an actor for self-service calls by the given
// customer.
func NewCustomerActor(customerID kernel.UUID) (Actor, error) {
	if err := customerID.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		customerID: customerID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the actor was created through a constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// System reports whether the actor acts with system privileges.
func (a Actor) System() bool { return a.system }

// CustomerID returns the acting customer's id. It is the zero UUID for
// system actors.
func (a Actor) CustomerID() kernel.UUID { return a.customerID }
