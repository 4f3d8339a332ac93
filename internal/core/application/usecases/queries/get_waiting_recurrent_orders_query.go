package queries

import (
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/pkg/guard"
)

var ErrGetWaitingRecurrentOrdersQueryIsNotConstructed = errors.New(
	"GetWaitingRecurrentOrdersQuery must be created via NewGetWaitingRecurrentOrdersQuery constructor",
)

// GetWaitingRecurrentOrdersQuery retrieves recurrent orders whose waiting
// status is active. The recurrence job restarts these to place the next
// installment.
type GetWaitingRecurrentOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWaitingRecurrentOrdersQuery creates a parameterless query for
// waiting recurrent orders.
func NewGetWaitingRecurrentOrdersQuery() GetWaitingRecurrentOrdersQuery {
	return GetWaitingRecurrentOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWaitingRecurrentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetWaitingRecurrentOrdersQueryIsNotConstructed)
}

// GetWaitingRecurrentOrdersQueryResponse identifies one order due for a
// recurrence restart.
type GetWaitingRecurrentOrdersQueryResponse struct {
	ID        kernel.UUID
	GapInDays int
}
