package status

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrTransactionForbidden is the sentinel for guard violations: an active
// status forbids the requested transaction. Callers classify with errors.Is.
var ErrTransactionForbidden = errors.New("transaction forbidden by active status")

// TransactionForbiddenError identifies the transaction that was rejected,
// the aggregate it was attempted on, and the specific blocking status.
// Only the first blocking status found in canonical id order is reported.
type TransactionForbiddenError struct {
	Transaction    Transaction
	SubjectID      string
	BlockingStatus string
}

func (e *TransactionForbiddenError) Error() string {
	return fmt.Sprintf("transaction %s forbidden for %s by active status %s",
		e.Transaction, e.SubjectID, e.BlockingStatus)
}

func (e *TransactionForbiddenError) Unwrap() error {
	return ErrTransactionForbidden
}

// orderGuards maps each order-level status to the transactions it forbids
// while active. Item-scoped transactions appear here too: they are checked
// against the owning order's statuses before any item is touched.
var orderGuards = map[OrderStatusID]map[Transaction]struct{}{
	OrderAwaitingApproval: forbid(
		ReleaseOrder, GenerateInvoice, SetTransitActive,
	),
	OrderCreditBlock: forbid(
		ReleaseOrder, GenerateInvoice, SetTransitActive, RestartOrder,
	),
	OrderFraudHold: forbid(
		ReleaseOrder, GenerateInvoice, SetTransitActive, RestartOrder, RestartDisputedOrder,
	),
	OrderAdminHold: forbid(
		ReleaseOrder, GenerateInvoice, CancelOrder, CancelItem,
		SetTransitActive, ChangeDetails, RestartOrder, RestartDisputedOrder,
	),
	OrderDisputed: forbid(
		CompleteOrder, GenerateInvoice, CancelOrder, RaiseDispute,
		SetTransitActive, ChangeDetails, RestartOrder,
	),
	OrderBillingBlocked: forbid(
		GenerateInvoice, RestartOrder,
	),
	OrderDeliveryBlocked: forbid(
		SetTransitActive,
	),
	OrderLocked: forbid(
		ReleaseOrder, CancelOrder, CancelItem, SystemCancelItem,
		GenerateInvoice, SetTransitActive, ChangeDetails, SystemChangeDetails,
		RestartOrder, RestartDisputedOrder,
	),
	OrderInvoiced: forbid(
		CancelOrder, SetTransitActive, ChangeDetails,
	),
	OrderCompleted: forbid(
		ReleaseOrder, LockOrder, CancelOrder, SystemCancelItem,
		ApplyCreditBlock, ApplyFraudHold, ApplyAdminHold,
		GenerateInvoice, CancelItem, BackorderItem, SetTransitActive,
		ChangeDetails, SystemChangeDetails, CancelInvoice,
	),
	OrderCancelled: forbid(
		ReleaseOrder, LockOrder, CancelOrder, SystemCancelItem,
		ApplyCreditBlock, ApplyFraudHold, ApplyAdminHold,
		GenerateInvoice, CancelItem, SetTransitActive,
		ChangeDetails, SystemChangeDetails, RestartOrder,
	),
	OrderInTransit: forbid(
		CancelOrder, SetTransitActive, CancelItem, GenerateInvoice,
		FlagOrderDeletion, CompleteOrder, BackorderItem, ChangeDetails,
	),
	OrderWaiting: forbid(
		CancelOrder, CancelItem, BackorderItem, CancelInvoice, ChangeDetails,
	),
	OrderReleased: forbid(
		ChangeDetails,
	),
}

// itemGuards maps each item-level status to the transactions it forbids.
// A cancelled item can be neither re-cancelled nor backordered.
var itemGuards = map[ItemStatusID]map[Transaction]struct{}{
	ItemCancelledByCustomer: forbid(
		CancelItem, SystemCancelItem, BackorderItem,
	),
	ItemCancelledBySystem: forbid(
		CancelItem, SystemCancelItem, BackorderItem,
	),
}

func forbid(txs ...Transaction) map[Transaction]struct{} {
	set := make(map[Transaction]struct{}, len(txs))
	for _, t := range txs {
		set[t] = struct{}{}
	}
	return set
}

// CheckOrderGuards fails with a TransactionForbiddenError if any active
// order-level status forbids the transaction. Records are scanned in
// canonical status-id order and only the first match is reported. An empty
// or nil collection never blocks anything.
func CheckOrderGuards(records OrderRecords, t Transaction, subjectID string) error {
	if len(records) == 0 {
		return nil
	}
	slog.Debug("checking order guards", "transaction", t, "order_id", subjectID)

	for _, id := range orderStatusOrder {
		rec, ok := records[id]
		if !ok || !rec.Active() {
			continue
		}
		if _, blocked := orderGuards[id][t]; blocked {
			err := &TransactionForbiddenError{
				Transaction:    t,
				SubjectID:      subjectID,
				BlockingStatus: id.String(),
			}
			slog.Warn("order transaction forbidden",
				"transaction", t, "order_id", subjectID, "blocking_status", id)
			return err
		}
	}
	return nil
}

// CheckItemGuards fails with a TransactionForbiddenError if any active
// item-level status forbids the transaction. Semantics match CheckOrderGuards.
func CheckItemGuards(records ItemRecords, t Transaction, subjectID string) error {
	if len(records) == 0 {
		return nil
	}
	slog.Debug("checking item guards", "transaction", t, "item_id", subjectID)

	for _, id := range itemStatusOrder {
		rec, ok := records[id]
		if !ok || !rec.Active() {
			continue
		}
		if _, blocked := itemGuards[id][t]; blocked {
			err := &TransactionForbiddenError{
				Transaction:    t,
				SubjectID:      subjectID,
				BlockingStatus: id.String(),
			}
			slog.Warn("item transaction forbidden",
				"transaction", t, "item_id", subjectID, "blocking_status", id)
			return err
		}
	}
	return nil
}
