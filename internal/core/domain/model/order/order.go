package order

import (
	"errors"
	"fmt"
	"time"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/status"
	"salesorders/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// CreationFlags select which screening statuses a new order is born with.
// Every order starts with the created status active; flags add holds on top.
type CreationFlags struct {
	// ApprovalRequired puts the order into awaiting approval until a
	// reviewer approves it.
	ApprovalRequired bool

	// CreditBlock marks the customer's credit as blocked. It also blocks
	// delivery and billing.
	CreditBlock bool

	// FraudHold marks the order as held for fraud review. It also blocks
	// delivery and billing.
	FraudHold bool
}

// BackorderLine pairs an item with the quantity that moves to backorder.
type BackorderLine struct {
	Item     *Item
	Quantity int64
}

// Order is the sales order aggregate root. It owns the order-level status
// records and orchestrates transactions across the header and its items.
//
// Order follows these invariants:
//   - At most one status record exists per status id
//   - Status effects are applied atomically: a rejected step leaves the
//     aggregate untouched
//   - Dedicated operations (cancel, restart) cannot be reached through the
//     generic transaction entry point
//   - Can only be created through NewOrder or RestoreOrder
//
// Items are loaded on demand: repositories may restore an order without its
// items, in which case item-level methods receive the loaded items explicitly.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	customerName string
	createdAt    time.Time

	deliverySpeed DeliverySpeed
	recurrent     bool

	address    ShipmentAddress
	recurrence *RecurrenceSpec

	statuses status.OrderRecords
	items    []*Item

	version int64

	isConstructed bool
}

// NewOrder creates a new sales order with at least one item. The initial
// status set is seeded from the creation flags: the created status is always
// active, approval and screening holds are added per flag, and a credit block
// or fraud hold additionally blocks delivery and billing.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	deliverySpeed DeliverySpeed,
	recurrent bool,
	address ShipmentAddress,
	recurrence *RecurrenceSpec,
	items []*Item,
	flags CreationFlags,
) (*Order, error) {
	order := &Order{
		createdAt:     time.Now().UTC(),
		recurrent:     recurrent,
		statuses:      seedStatuses(flags),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setCustomerName(customerName),
		order.setDeliverySpeed(deliverySpeed),
		order.setAddress(address),
		order.setRecurrence(recurrence),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence. Stored state is
// trusted; only structural validity of the identifiers is enforced. Items may
// be nil when the caller loaded the header only.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	createdAt time.Time,
	deliverySpeed DeliverySpeed,
	recurrent bool,
	address ShipmentAddress,
	recurrence *RecurrenceSpec,
	statuses status.OrderRecords,
	items []*Item,
	version int64,
) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}

	if statuses == nil {
		statuses = status.OrderRecords{}
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		customerName:  customerName,
		createdAt:     createdAt,
		deliverySpeed: deliverySpeed,
		recurrent:     recurrent,
		address:       address,
		recurrence:    recurrence,
		statuses:      statuses,
		items:         items,
		version:       version,
		isConstructed: true,
	}, nil
}

func seedStatuses(flags CreationFlags) status.OrderRecords {
	statuses := status.OrderRecords{
		status.OrderCreated: status.NewRecord(status.OrderCreated),
	}

	add := func(id status.OrderStatusID) {
		if _, ok := statuses[id]; !ok {
			statuses[id] = status.NewRecord(id)
		}
	}

	if flags.ApprovalRequired {
		add(status.OrderAwaitingApproval)
	}
	if flags.CreditBlock || flags.FraudHold {
		add(status.OrderDeliveryBlocked)
		add(status.OrderBillingBlocked)
	}
	if flags.CreditBlock {
		add(status.OrderCreditBlock)
	}
	if flags.FraudHold {
		add(status.OrderFraudHold)
	}

	return statuses
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CustomerName returns the customer's display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CreatedAt returns the moment the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliverySpeed returns the requested delivery speed.
func (o *Order) DeliverySpeed() DeliverySpeed {
	return o.deliverySpeed
}

// Recurrent reports whether the order repeats on a schedule.
func (o *Order) Recurrent() bool {
	return o.recurrent
}

// Address returns the shipment address.
func (o *Order) Address() ShipmentAddress {
	return o.address
}

// Recurrence returns the recurrence spec, or nil for one-off orders.
func (o *Order) Recurrence() *RecurrenceSpec {
	return o.recurrence
}

// Statuses returns a copy of the order-level status records.
func (o *Order) Statuses() status.OrderRecords {
	return o.statuses.Clone()
}

// Items returns the items loaded with the order. It is nil when the order
// was restored header-only.
func (o *Order) Items() []*Item {
	return o.items
}

// Version returns the optimistic concurrency version loaded from storage.
func (o *Order) Version() int64 {
	return o.version
}

// HasActiveStatus reports whether the given order status is currently active.
func (o *Order) HasActiveStatus(id status.OrderStatusID) bool {
	record, ok := o.statuses[id]
	return ok && record.Active()
}

// InTransit reports whether the order is currently in transit.
func (o *Order) InTransit() bool {
	return o.HasActiveStatus(status.OrderInTransit)
}

// Cancelled reports whether the order has been cancelled.
func (o *Order) Cancelled() bool {
	return o.HasActiveStatus(status.OrderCancelled)
}

// Perform runs a generic order transaction against the status records.
// Item transactions and transactions with dedicated operations are rejected
// here, before any guard runs, so their extra orchestration cannot be
// skipped.
func (o *Order) Perform(t status.Transaction) error {
	if t.Domain() != status.DomainOrder {
		return errs.NewValueIsInvalidErrorWithCause("transaction",
			fmt.Errorf("%s does not target the order", t))
	}

	switch t {
	case status.CancelOrder, status.RestartOrder, status.RestartDisputedOrder:
		return errs.NewValueIsInvalidErrorWithCause("transaction",
			fmt.Errorf("%s requires its dedicated operation", t))
	}

	return o.apply(t)
}

// Cancel cancels the order and cascades the cancellation to every loaded
// item. System actors record system cancellations on the items, customers
// record customer cancellations. The header guards run first, then every
// item is guard-checked and cancelled individually, and only then does the
// header flip: an item that cannot be cancelled (already cancelled
// included) aborts the whole operation with the header still open.
func (o *Order) Cancel(systemActor bool, items []*Item) error {
	if err := status.CheckOrderGuards(o.statuses, status.CancelOrder, o.id.String()); err != nil {
		return err
	}

	for _, item := range items {
		if err := item.Cancel(systemActor); err != nil {
			return err
		}
	}

	updated, err := status.ApplyOrderTransition(o.statuses, status.CancelOrder, o.id.String())
	if err != nil {
		return err
	}

	o.statuses = updated
	return nil
}

// MarkCancelled cancels the order header without touching items. It backs
// the automatic cascade that fires when the last open item gets cancelled,
// so it skips the cancel guards: items that could be cancelled one by one
// must not leave the header stuck open.
func (o *Order) MarkCancelled() error {
	updated, err := status.ApplyOrderTransition(o.statuses, status.CancelOrder, o.id.String())
	if err != nil {
		return err
	}

	o.statuses = updated
	return nil
}

// CancelItems cancels the given items. The order's statuses are always
// checked against the customer cancel-item transaction first, regardless of
// actor: a held or locked order keeps all of its items. The actor only
// selects which cancellation the items record.
func (o *Order) CancelItems(systemActor bool, items []*Item) error {
	if err := status.CheckOrderGuards(o.statuses, status.CancelItem, o.id.String()); err != nil {
		return err
	}

	for _, item := range items {
		if err := item.Cancel(systemActor); err != nil {
			return err
		}
	}

	return nil
}

// MoveItemsToBackorder moves each listed item to backorder with its quantity.
// The order's statuses are checked against the backorder first.
func (o *Order) MoveItemsToBackorder(lines []BackorderLine) error {
	if err := status.CheckOrderGuards(o.statuses, status.BackorderItem, o.id.String()); err != nil {
		return err
	}

	for _, line := range lines {
		if err := line.Item.MoveToBackorder(line.Quantity); err != nil {
			return err
		}
	}

	return nil
}

// PerformItemTransaction runs a generic item transaction against the given
// items, checking the owning order's guards before any item is touched.
// Order transactions and transactions with dedicated operations or payloads
// are rejected before any guard runs. Reorders route through the item's
// reorder operation so the backorder detail is cleared together with the
// status.
func (o *Order) PerformItemTransaction(t status.Transaction, items []*Item) error {
	if t.Domain() != status.DomainItem {
		return errs.NewValueIsInvalidErrorWithCause("transaction",
			fmt.Errorf("%s does not target items", t))
	}

	switch t {
	case status.CreateItem, status.CancelItem, status.SystemCancelItem, status.BackorderItem:
		return errs.NewValueIsInvalidErrorWithCause("transaction",
			fmt.Errorf("%s requires its dedicated operation", t))
	}

	if err := status.CheckOrderGuards(o.statuses, t, o.id.String()); err != nil {
		return err
	}

	for _, item := range items {
		var err error
		if t == status.ReorderItem {
			err = item.Reorder()
		} else {
			err = item.Apply(t)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Restart moves a waiting order back to created. Only recurrent orders
// restart: the operation exists for the next installment of a schedule, not
// as a generic rewind. When cancelInvoice is set the open invoice is
// cancelled in the same operation; the invoice step is guarded against the
// already-restarted status set and the whole operation is all or nothing.
func (o *Order) Restart(cancelInvoice bool) error {
	if !o.recurrent {
		return errs.NewValueIsInvalidErrorWithCause("order",
			errors.New("restart is for recurrent orders only"))
	}

	return o.restartWith(status.RestartOrder, cancelInvoice)
}

// RestartDisputed moves a disputed order back to created, optionally
// cancelling the open invoice in the same all-or-nothing operation.
func (o *Order) RestartDisputed(cancelInvoice bool) error {
	return o.restartWith(status.RestartDisputedOrder, cancelInvoice)
}

func (o *Order) restartWith(t status.Transaction, cancelInvoice bool) error {
	if err := status.CheckOrderGuards(o.statuses, t, o.id.String()); err != nil {
		return err
	}

	updated, err := status.ApplyOrderTransition(o.statuses, t, o.id.String())
	if err != nil {
		return err
	}

	if cancelInvoice {
		if err := status.CheckOrderGuards(updated, status.CancelInvoice, o.id.String()); err != nil {
			return err
		}

		updated, err = status.ApplyOrderTransition(updated, status.CancelInvoice, o.id.String())
		if err != nil {
			return err
		}
	}

	o.statuses = updated
	return nil
}

// CheckChangePermission verifies that the actor may modify the order's
// details. System actors are held to a narrower guard set than customers.
func (o *Order) CheckChangePermission(systemActor bool) error {
	t := status.ChangeDetails
	if systemActor {
		t = status.SystemChangeDetails
	}

	return status.CheckOrderGuards(o.statuses, t, o.id.String())
}

// ChangeShipmentAddress replaces the shipment address.
func (o *Order) ChangeShipmentAddress(address ShipmentAddress, systemActor bool) error {
	if err := address.Validate(); err != nil {
		return err
	}
	if err := o.CheckChangePermission(systemActor); err != nil {
		return err
	}

	o.address = address
	return nil
}

// ChangeDeliverySpeed replaces the requested delivery speed.
func (o *Order) ChangeDeliverySpeed(deliverySpeed DeliverySpeed, systemActor bool) error {
	if err := deliverySpeed.Validate(); err != nil {
		return err
	}
	if err := o.CheckChangePermission(systemActor); err != nil {
		return err
	}

	o.deliverySpeed = deliverySpeed
	return nil
}

// ChangeRecurrence replaces the recurrence spec. Only recurrent orders that
// are not in transit accept a new schedule.
func (o *Order) ChangeRecurrence(recurrence RecurrenceSpec, systemActor bool) error {
	if err := recurrence.Validate(); err != nil {
		return err
	}
	if !o.recurrent {
		return errs.NewValueIsInvalidErrorWithCause("recurrence",
			errors.New("order is not recurrent"))
	}
	if o.InTransit() {
		return errs.NewValueIsInvalidErrorWithCause("recurrence",
			errors.New("order is in transit"))
	}
	if err := o.CheckChangePermission(systemActor); err != nil {
		return err
	}

	o.recurrence = &recurrence
	return nil
}

// AddItems appends new items to the order.
func (o *Order) AddItems(items []*Item, systemActor bool) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	if err := o.CheckChangePermission(systemActor); err != nil {
		return err
	}

	o.items = append(o.items, items...)
	return nil
}

// apply guard-checks and applies a single order transaction.
func (o *Order) apply(t status.Transaction) error {
	if err := status.CheckOrderGuards(o.statuses, t, o.id.String()); err != nil {
		return err
	}

	updated, err := status.ApplyOrderTransition(o.statuses, t, o.id.String())
	if err != nil {
		return err
	}

	o.statuses = updated
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if err := requireField("customer name", customerName); err != nil {
		return err
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setDeliverySpeed(deliverySpeed DeliverySpeed) error {
	if err := deliverySpeed.Validate(); err != nil {
		return err
	}
	o.deliverySpeed = deliverySpeed
	return nil
}

func (o *Order) setAddress(address ShipmentAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setRecurrence(recurrence *RecurrenceSpec) error {
	if o.recurrent {
		if recurrence == nil {
			return errs.NewValueIsRequiredError("recurrence")
		}
		if err := recurrence.Validate(); err != nil {
			return err
		}
	} else if recurrence != nil {
		return errs.NewValueIsInvalidErrorWithCause("recurrence",
			errors.New("order is not recurrent"))
	}
	o.recurrence = recurrence
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
