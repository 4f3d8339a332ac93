package order

import (
	"errors"
	"fmt"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/status"
	"salesorders/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single line of a sales order. Its commercial attributes are
// immutable after creation; lifecycle state lives entirely in its status
// records, plus an optional backorder detail that exists exactly while the
// backordered status is active. The product name is a snapshot taken at
// ordering time, so later catalog renames do not rewrite history.
type Item struct {
	id             kernel.UUID
	vendorID       kernel.UUID
	productID      kernel.UUID
	name           string
	quantity       int64
	unitPriceCents int64
	discountBps    int

	transitActive bool

	statuses  status.ItemRecords
	backorder *Backorder

	isConstructed bool
}

// NewItem creates a new order item. A fresh item carries no active status
// records and is not in transit; statuses accumulate as transactions are
// applied to it.
func NewItem(
	id, vendorID, productID kernel.UUID,
	name string,
	quantity, unitPriceCents int64,
	discountBps int,
) (*Item, error) {
	item := &Item{
		statuses:      status.ItemRecords{},
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setVendorID(vendorID),
		item.setProductID(productID),
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPriceCents(unitPriceCents),
		item.setDiscountBps(discountBps),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an item from persistence. It trusts the stored
// state and only enforces structural validity of the identifiers.
func RestoreItem(
	id, vendorID, productID kernel.UUID,
	name string,
	quantity, unitPriceCents int64,
	discountBps int,
	transitActive bool,
	statuses status.ItemRecords,
	backorder *Backorder,
) (*Item, error) {
	if err := errors.Join(id.Validate(), vendorID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	if statuses == nil {
		statuses = status.ItemRecords{}
	}

	return &Item{
		id:             id,
		vendorID:       vendorID,
		productID:      productID,
		name:           name,
		quantity:       quantity,
		unitPriceCents: unitPriceCents,
		discountBps:    discountBps,
		transitActive:  transitActive,
		statuses:       statuses,
		backorder:      backorder,
		isConstructed:  true,
	}, nil
}

// Validate ensures the item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// VendorID returns the identifier of the vendor the item is sourced from.
func (i *Item) VendorID() kernel.UUID {
	return i.vendorID
}

// ProductID returns the identifier of the ordered product.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name snapshot taken at ordering time.
func (i *Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int64 {
	return i.quantity
}

// UnitPriceCents returns the unit price in minor currency units.
func (i *Item) UnitPriceCents() int64 {
	return i.unitPriceCents
}

// DiscountBps returns the discount in basis points (0 to 10000).
func (i *Item) DiscountBps() int {
	return i.discountBps
}

// TransitActive reports whether the item is currently moving through the
// logistics network.
func (i *Item) TransitActive() bool {
	return i.transitActive
}

// Statuses returns a copy of the item's status records.
func (i *Item) Statuses() status.ItemRecords {
	return i.statuses.Clone()
}

// BackorderDetail returns the backorder attached to the item, or nil when
// none is active.
func (i *Item) BackorderDetail() *Backorder {
	return i.backorder
}

// HasActiveStatus reports whether the given status is currently active.
func (i *Item) HasActiveStatus(id status.ItemStatusID) bool {
	record, ok := i.statuses[id]
	return ok && record.Active()
}

// Cancelled reports whether the item has been cancelled by either the
// customer or the system.
func (i *Item) Cancelled() bool {
	return i.HasActiveStatus(status.ItemCancelledByCustomer) ||
		i.HasActiveStatus(status.ItemCancelledBySystem)
}

// Apply runs an item transaction against the item's status records. The
// transaction is first checked against the item's guards; a blocking active
// status rejects it with a TransactionForbiddenError.
func (i *Item) Apply(t status.Transaction) error {
	if err := status.CheckItemGuards(i.statuses, t, i.id.String()); err != nil {
		return err
	}

	updated, err := status.ApplyItemTransition(i.statuses, t, i.id.String())
	if err != nil {
		return err
	}

	i.statuses = updated
	return nil
}

// Cancel cancels the item. System actors record a system cancellation,
// customers a customer cancellation; both are blocked by the same guards.
func (i *Item) Cancel(systemActor bool) error {
	t := status.CancelItem
	if systemActor {
		t = status.SystemCancelItem
	}

	return i.Apply(t)
}

// MoveToBackorder marks the item as backordered for the given quantity.
// A backordered or cancelled item cannot be backordered again.
func (i *Item) MoveToBackorder(quantity int64) error {
	backorder, err := NewBackorder(quantity)
	if err != nil {
		return err
	}

	if err := i.Apply(status.BackorderItem); err != nil {
		return err
	}

	i.backorder = &backorder
	return nil
}

// Reorder clears the item's backordered state. The backorder detail is
// dropped together with the status, so reordering is idempotent.
func (i *Item) Reorder() error {
	if err := i.Apply(status.ReorderItem); err != nil {
		return err
	}

	i.backorder = nil
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	i.vendorID = vendorID
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if err := requireField("product name", name); err != nil {
		return err
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPriceCents(unitPriceCents int64) error {
	if unitPriceCents < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid",
			fmt.Errorf("%d is negative", unitPriceCents))
	}
	i.unitPriceCents = unitPriceCents
	return nil
}

func (i *Item) setDiscountBps(discountBps int) error {
	if discountBps < 0 || discountBps > 10000 {
		return errs.NewValueIsOutOfRangeError("discount bps", discountBps, 0, 10000)
	}
	i.discountBps = discountBps
	return nil
}
