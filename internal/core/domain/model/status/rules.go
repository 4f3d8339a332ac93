package status

// Rule describes what a transaction does to an aggregate's status slots:
// every id in Deactivate is switched off, then every id in Activate is
// switched on (creating or reactivating the slot). A rule must not name the
// same id in both sets.
type Rule[S ID] struct {
	Activate   []S
	Deactivate []S
}

// IsEmpty reports whether the rule mutates nothing.
func (r Rule[S]) IsEmpty() bool {
	return len(r.Activate) == 0 && len(r.Deactivate) == 0
}

func activate[S ID](ids ...S) Rule[S] {
	return Rule[S]{Activate: ids}
}

func deactivate[S ID](ids ...S) Rule[S] {
	return Rule[S]{Deactivate: ids}
}

// move activates one id and deactivates another in the same transition.
func move[S ID](to, from S) Rule[S] {
	return Rule[S]{Activate: []S{to}, Deactivate: []S{from}}
}

// orderRules maps each order-scoped transaction to its status effect.
// Transactions absent from the map (ChangeDetails, SystemChangeDetails,
// RemoveCancelBlock) are guard-only and leave the status set untouched.
var orderRules = map[Transaction]Rule[OrderStatusID]{
	// Lifecycle: created -> released -> in transit -> waiting -> completed,
	// with restart moving a waiting order back to created.
	ReleaseOrder:       move(OrderReleased, OrderCreated),
	SetTransitActive:   move(OrderInTransit, OrderReleased),
	SetTransitInactive: move(OrderWaiting, OrderInTransit),
	RestartOrder:       move(OrderCreated, OrderWaiting),
	CompleteOrder:      move(OrderCompleted, OrderWaiting),
	CancelOrder:        activate(OrderCancelled),
	FlagOrderDeletion:  activate(OrderDeletionFlagged),

	LockOrder:   activate(OrderLocked),
	UnlockOrder: deactivate(OrderLocked),

	ApproveOrder: deactivate(OrderAwaitingApproval),

	// A credit block or fraud hold also blocks delivery and billing.
	ApplyCreditBlock:  activate(OrderCreditBlock, OrderDeliveryBlocked, OrderBillingBlocked),
	RemoveCreditBlock: deactivate(OrderCreditBlock, OrderDeliveryBlocked, OrderBillingBlocked),
	ApplyFraudHold:    activate(OrderFraudHold, OrderDeliveryBlocked, OrderBillingBlocked),
	RemoveFraudHold:   deactivate(OrderFraudHold, OrderDeliveryBlocked, OrderBillingBlocked),

	ApplyAdminHold:      activate(OrderAdminHold),
	RemoveAdminHold:     deactivate(OrderAdminHold),
	ApplyDeliveryBlock:  activate(OrderDeliveryBlocked),
	RemoveDeliveryBlock: deactivate(OrderDeliveryBlocked),
	ApplyBillingBlock:   activate(OrderBillingBlocked),
	RemoveBillingBlock:  deactivate(OrderBillingBlocked),

	GenerateInvoice: activate(OrderInvoiced),
	CancelInvoice:   deactivate(OrderInvoiced),

	RaiseDispute:         activate(OrderDisputed),
	ResolveDispute:       deactivate(OrderDisputed),
	RestartDisputedOrder: move(OrderCreated, OrderDisputed),
}

// itemRules maps each item-scoped transaction to its status effect.
// CreateItem has no status effect.
var itemRules = map[Transaction]Rule[ItemStatusID]{
	CancelItem:       activate(ItemCancelledByCustomer),
	SystemCancelItem: activate(ItemCancelledBySystem),
	FlagItemDeletion: activate(ItemDeletionFlagged),
	BackorderItem:    activate(ItemBackordered),
	ReorderItem:      deactivate(ItemBackordered),
}

// OrderRule returns the status effect of an order-scoped transaction.
// Missing entries return an empty rule and ok=false; that is legal and means
// the transaction mutates no statuses.
func OrderRule(t Transaction) (Rule[OrderStatusID], bool) {
	rule, ok := orderRules[t]
	return rule, ok
}

// ItemRule returns the status effect of an item-scoped transaction.
func ItemRule(t Transaction) (Rule[ItemStatusID], bool) {
	rule, ok := itemRules[t]
	return rule, ok
}
