package commands

import (
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/pkg/errs"
)

// checkOwnership hides orders of other customers from customer actors.
// A foreign order is indistinguishable from a missing one.
func checkOwnership(aggregate *order.Order, actor Actor) error {
	if actor.System() {
		return nil
	}
	if !aggregate.CustomerID().IsEqual(actor.CustomerID()) {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	return nil
}
