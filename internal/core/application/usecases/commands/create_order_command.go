package commands

import (
	"errors"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/pkg/errs"
	"salesorders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// AddressInput carries the raw shipment address fields of a create or change
// request. Field-level validation happens in the domain constructor.
type AddressInput struct {
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

// RecurrenceInput carries the raw recurrence schedule of a create or change
// request.
type RecurrenceInput struct {
	Installments        int
	GapInDays           int
	RequestedOffsetDays int
}

// ItemInput carries the raw fields of one requested order line.
type ItemInput struct {
	ID             kernel.UUID
	VendorID       kernel.UUID
	ProductID      kernel.UUID
	Name           string
	Quantity       int64
	UnitPriceCents int64
	DiscountBps    int
}

// CreateOrderCommand represents a request to register a new sales order with
// its initial items. Screening flags decide which holds the order starts
// with in addition to the created status.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	customerName string
	speed        order.DeliverySpeed
	recurrent    bool
	address      AddressInput
	recurrence   *RecurrenceInput
	items        []ItemInput
	flags        order.CreationFlags

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new sales order.
// Identifier and shape checks happen here; the full field validation is done
// by the domain constructors when the command is handled.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	speed order.DeliverySpeed,
	recurrent bool,
	address AddressInput,
	recurrence *RecurrenceInput,
	items []ItemInput,
	flags order.CreationFlags,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerName: customerName,
		speed:        speed,
		recurrent:    recurrent,
		address:      address,
		recurrence:   recurrence,
		items:        items,
		flags:        flags,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.checkItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the owning customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// CustomerName returns the customer's display name.
func (c CreateOrderCommand) CustomerName() string { return c.customerName }

// Speed returns the requested delivery speed.
func (c CreateOrderCommand) Speed() order.DeliverySpeed { return c.speed }

// Recurrent reports whether the order repeats on a schedule.
func (c CreateOrderCommand) Recurrent() bool { return c.recurrent }

// Address returns the raw shipment address fields.
func (c CreateOrderCommand) Address() AddressInput { return c.address }

// Recurrence returns the raw recurrence schedule, or nil for one-off orders.
func (c CreateOrderCommand) Recurrence() *RecurrenceInput { return c.recurrence }

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []ItemInput { return c.items }

// Flags returns the screening flags for the new order.
func (c CreateOrderCommand) Flags() order.CreationFlags { return c.flags }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) checkItems(items []ItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	return nil
}
