// Package queries contains read-only operations over the order store.
// Query handlers read through GORM directly and return plain response
// structs, bypassing the aggregate constructors.
package queries

import (
	"errors"
	"time"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its status records and items.
// When a customer id is set, only that customer's order is visible; a
// foreign order reads as not found.
type GetOrderQuery struct {
	orderID    kernel.UUID
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for any order, regardless of owner.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewGetCustomerOrderQuery creates a query restricted to orders owned by the
// given customer.
func NewGetCustomerOrderQuery(orderID, customerID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:    orderID,
		customerID: &customerID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// CustomerID returns the owning customer restriction, or nil for system reads.
func (q GetOrderQuery) CustomerID() *kernel.UUID { return q.customerID }

// StatusResponse is one status record of an order or item.
type StatusResponse struct {
	StatusID  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BackorderResponse is the backorder detail of a backordered item.
type BackorderResponse struct {
	Quantity int64
}

// ItemResponse is one order line with its status records.
type ItemResponse struct {
	ID             kernel.UUID
	VendorID       kernel.UUID
	ProductID      kernel.UUID
	Name           string
	Quantity       int64
	UnitPriceCents int64
	DiscountBps    int
	TransitActive  bool
	Statuses       []StatusResponse
	Backorder      *BackorderResponse
}

// GetOrderQueryResponse is the full read model of one order.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	CustomerName  string
	CreatedAt     time.Time
	DeliverySpeed string
	Recurrent     bool
	Address       AddressResponse
	Recurrence    *RecurrenceResponse
	Statuses      []StatusResponse
	Items         []ItemResponse
}

// AddressResponse is the shipment address of an order.
type AddressResponse struct {
	RecipientName   string
	CompanyName     string
	PhoneNumber     string
	StreetLine1     string
	StreetLine2     string
	City            string
	StateOrProvince string
	PostalCode      string
	Country         string
	Landmark        string
}

// RecurrenceResponse is the recurrence schedule of a recurrent order.
type RecurrenceResponse struct {
	Installments        int
	GapInDays           int
	RequestedOffsetDays int
}
