package status

import (
	"fmt"

	"salesorders/internal/pkg/errs"
)

// Domain distinguishes the two kinds of aggregates a transaction may target.
// Applying an order-scoped transaction to an item (or vice versa) is a
// programming error, not a business-rule failure.
type Domain int

const (
	// DomainUnknown catches uninitialized Domain values.
	DomainUnknown Domain = iota

	// DomainOrder marks transactions that mutate order-header statuses.
	DomainOrder

	// DomainItem marks transactions that mutate item statuses.
	DomainItem
)

func (d Domain) String() string {
	switch d {
	case DomainOrder:
		return "Order"
	case DomainItem:
		return "Item"
	default:
		return "Unknown"
	}
}

// Transaction is a named business operation. Each transaction is statically
// bound to exactly one Domain and maps to at most one rule-table entry.
type Transaction string

// Order-scoped transactions.
const (
	// Order lifecycle
	ReleaseOrder       Transaction = "RELEASE_ORDER"
	LockOrder          Transaction = "LOCK_ORDER"
	UnlockOrder        Transaction = "UNLOCK_ORDER"
	CancelOrder        Transaction = "CANCEL_ORDER"
	SetTransitActive   Transaction = "SET_TRANSIT_ACTIVE"
	SetTransitInactive Transaction = "SET_TRANSIT_INACTIVE"
	RestartOrder       Transaction = "RESTART_ORDER"
	FlagOrderDeletion  Transaction = "MARK_ORDER_DELETION_FLAG"
	CompleteOrder      Transaction = "COMPLETE_ORDER"

	// Approval and compliance blocks
	ApplyCreditBlock    Transaction = "APPLY_CREDIT_BLOCK"
	RemoveCreditBlock   Transaction = "REMOVE_CREDIT_BLOCK"
	ApplyFraudHold      Transaction = "APPLY_FRAUD_HOLD"
	RemoveFraudHold     Transaction = "REMOVE_FRAUD_HOLD"
	ApplyAdminHold      Transaction = "APPLY_ADMIN_HOLD"
	RemoveAdminHold     Transaction = "REMOVE_ADMIN_HOLD"
	ApproveOrder        Transaction = "APPROVE_ORDER"
	RemoveCancelBlock   Transaction = "REMOVE_CANCEL_BLOCK"
	ApplyDeliveryBlock  Transaction = "APPLY_DELIVERY_BLOCK"
	RemoveDeliveryBlock Transaction = "REMOVE_DELIVERY_BLOCK"
	ChangeDetails       Transaction = "CHANGE_DETAILS"
	SystemChangeDetails Transaction = "SYSTEM_CHANGE_DETAILS"

	// Billing
	GenerateInvoice    Transaction = "GENERATE_INVOICE"
	CancelInvoice      Transaction = "CANCEL_INVOICE"
	ApplyBillingBlock  Transaction = "APPLY_BILLING_BLOCK"
	RemoveBillingBlock Transaction = "REMOVE_BILLING_BLOCK"

	// Dispute and resolution
	RaiseDispute         Transaction = "RAISE_DISPUTE"
	ResolveDispute       Transaction = "RESOLVE_DISPUTE"
	RestartDisputedOrder Transaction = "RESTART_DISPUTED_ORDER"
)

// Item-scoped transactions.
const (
	CreateItem       Transaction = "CREATE_ITEM"
	SystemCancelItem Transaction = "SYSTEM_CANCEL_ITEM"
	CancelItem       Transaction = "CANCEL_ITEM"
	FlagItemDeletion Transaction = "SET_ITEM_DELETION_FLAG"
	BackorderItem    Transaction = "BACKORDER_ITEM"
	ReorderItem      Transaction = "REORDER_ITEM"
)

var transactionDomains = map[Transaction]Domain{
	ReleaseOrder:         DomainOrder,
	LockOrder:            DomainOrder,
	UnlockOrder:          DomainOrder,
	CancelOrder:          DomainOrder,
	SetTransitActive:     DomainOrder,
	SetTransitInactive:   DomainOrder,
	RestartOrder:         DomainOrder,
	FlagOrderDeletion:    DomainOrder,
	CompleteOrder:        DomainOrder,
	ApplyCreditBlock:     DomainOrder,
	RemoveCreditBlock:    DomainOrder,
	ApplyFraudHold:       DomainOrder,
	RemoveFraudHold:      DomainOrder,
	ApplyAdminHold:       DomainOrder,
	RemoveAdminHold:      DomainOrder,
	ApproveOrder:         DomainOrder,
	RemoveCancelBlock:    DomainOrder,
	ApplyDeliveryBlock:   DomainOrder,
	RemoveDeliveryBlock:  DomainOrder,
	ChangeDetails:        DomainOrder,
	SystemChangeDetails:  DomainOrder,
	GenerateInvoice:      DomainOrder,
	CancelInvoice:        DomainOrder,
	ApplyBillingBlock:    DomainOrder,
	RemoveBillingBlock:   DomainOrder,
	RaiseDispute:         DomainOrder,
	ResolveDispute:       DomainOrder,
	RestartDisputedOrder: DomainOrder,

	CreateItem:       DomainItem,
	SystemCancelItem: DomainItem,
	CancelItem:       DomainItem,
	FlagItemDeletion: DomainItem,
	BackorderItem:    DomainItem,
	ReorderItem:      DomainItem,
}

// Domain returns the aggregate kind this transaction is bound to,
// or DomainUnknown for an unrecognized transaction.
func (t Transaction) Domain() Domain {
	return transactionDomains[t]
}

// Validate checks that the transaction is part of the known catalog.
func (t Transaction) Validate() error {
	if _, ok := transactionDomains[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transaction",
			fmt.Errorf("%q is not a known transaction", string(t)))
	}
	return nil
}

func (t Transaction) String() string {
	return string(t)
}
