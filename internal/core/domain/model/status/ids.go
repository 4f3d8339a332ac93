package status

import (
	"fmt"

	"salesorders/internal/pkg/errs"
)

// OrderStatusID identifies a named condition on an order header.
// Several statuses may be active on the same order at once.
type OrderStatusID string

// Order-level status ids. The declaration order below is the canonical
// iteration order used by the guard checker and by status listings.
const (
	// Core lifecycle
	OrderCreated   OrderStatusID = "CREATED"
	OrderReleased  OrderStatusID = "RELEASED"
	OrderInTransit OrderStatusID = "IN_TRANSIT"
	OrderWaiting   OrderStatusID = "WAITING"
	OrderCompleted OrderStatusID = "LOGISTICALLY_COMPLETED"
	OrderCancelled OrderStatusID = "CANCELLED"

	// Financial and approval blocks
	OrderAwaitingApproval OrderStatusID = "AWAITING_APPROVAL"
	OrderCreditBlock      OrderStatusID = "CREDIT_BLOCK"
	OrderFraudHold        OrderStatusID = "FRAUD_HOLD"
	OrderDeliveryBlocked  OrderStatusID = "DELIVERY_BLOCKED"
	OrderBillingBlocked   OrderStatusID = "BILLING_BLOCKED"

	// Other states and locks
	OrderLocked          OrderStatusID = "LOCKED"
	OrderAdminHold       OrderStatusID = "ADMIN_HOLD"
	OrderDisputed        OrderStatusID = "DISPUTED"
	OrderInvoiced        OrderStatusID = "INVOICED"
	OrderDeletionFlagged OrderStatusID = "DELETION_FLAGGED"
)

// ItemStatusID identifies a named condition on a single order item.
type ItemStatusID string

// Item-level status ids, in canonical iteration order.
const (
	ItemBackordered         ItemStatusID = "BACKORDERED"
	ItemInvoiced            ItemStatusID = "INVOICED"
	ItemDeletionFlagged     ItemStatusID = "DELETION_FLAGGED"
	ItemCancelledByCustomer ItemStatusID = "CANCELLED_BY_CUSTOMER"
	ItemCancelledBySystem   ItemStatusID = "CANCELLED_BY_SYSTEM"
)

var orderStatusOrder = []OrderStatusID{
	OrderCreated,
	OrderReleased,
	OrderInTransit,
	OrderWaiting,
	OrderCompleted,
	OrderCancelled,
	OrderAwaitingApproval,
	OrderCreditBlock,
	OrderFraudHold,
	OrderDeliveryBlocked,
	OrderBillingBlocked,
	OrderLocked,
	OrderAdminHold,
	OrderDisputed,
	OrderInvoiced,
	OrderDeletionFlagged,
}

var itemStatusOrder = []ItemStatusID{
	ItemBackordered,
	ItemInvoiced,
	ItemDeletionFlagged,
	ItemCancelledByCustomer,
	ItemCancelledBySystem,
}

var orderStatusSet = func() map[OrderStatusID]struct{} {
	s := make(map[OrderStatusID]struct{}, len(orderStatusOrder))
	for _, id := range orderStatusOrder {
		s[id] = struct{}{}
	}
	return s
}()

var itemStatusSet = func() map[ItemStatusID]struct{} {
	s := make(map[ItemStatusID]struct{}, len(itemStatusOrder))
	for _, id := range itemStatusOrder {
		s[id] = struct{}{}
	}
	return s
}()

// OrderStatusIDs returns all order-level status ids in canonical order.
// The returned slice is a copy and safe to mutate.
func OrderStatusIDs() []OrderStatusID {
	ids := make([]OrderStatusID, len(orderStatusOrder))
	copy(ids, orderStatusOrder)
	return ids
}

// ItemStatusIDs returns all item-level status ids in canonical order.
// The returned slice is a copy and safe to mutate.
func ItemStatusIDs() []ItemStatusID {
	ids := make([]ItemStatusID, len(itemStatusOrder))
	copy(ids, itemStatusOrder)
	return ids
}

// Validate checks that the id is one of the known order-level status ids.
// Used when reconstructing records from persistence or external input.
func (s OrderStatusID) Validate() error {
	if _, ok := orderStatusSet[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status id",
			fmt.Errorf("%q is not a known order status", string(s)))
	}
	return nil
}

func (s OrderStatusID) String() string {
	return string(s)
}

// Validate checks that the id is one of the known item-level status ids.
func (s ItemStatusID) Validate() error {
	if _, ok := itemStatusSet[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("item status id",
			fmt.Errorf("%q is not a known item status", string(s)))
	}
	return nil
}

func (s ItemStatusID) String() string {
	return string(s)
}
