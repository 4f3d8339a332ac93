package status

import (
	"fmt"
	"log/slog"
	"time"

	"salesorders/internal/pkg/errs"
)

// ApplyOrderTransition applies an order-scoped transaction to an order's
// status slots and returns the full updated collection; the caller replaces
// the aggregate's collection with the result. The input is never mutated.
//
// A transaction bound to the item domain is rejected before anything is
// touched. A transaction with no rule entry is a legal no-op: the input is
// returned unchanged (as a copy) and a diagnostic is logged.
func ApplyOrderTransition(records OrderRecords, t Transaction, subjectID string) (OrderRecords, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if t.Domain() != DomainOrder {
		return nil, errs.NewValueIsInvalidErrorWithCause("transaction",
			fmt.Errorf("%s targets the %s domain, not Order", t, t.Domain()))
	}

	rule, ok := OrderRule(t)
	if !ok || rule.IsEmpty() {
		slog.Warn("no order status rule defined", "transaction", t, "order_id", subjectID)
		return records.Clone(), nil
	}

	return applyRule(records, rule, t, "order_id", subjectID), nil
}

// ApplyItemTransition applies an item-scoped transaction to an item's status
// slots. Semantics match ApplyOrderTransition.
func ApplyItemTransition(records ItemRecords, t Transaction, subjectID string) (ItemRecords, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if t.Domain() != DomainItem {
		return nil, errs.NewValueIsInvalidErrorWithCause("transaction",
			fmt.Errorf("%s targets the %s domain, not Item", t, t.Domain()))
	}

	rule, ok := ItemRule(t)
	if !ok || rule.IsEmpty() {
		slog.Warn("no item status rule defined", "transaction", t, "item_id", subjectID)
		return records.Clone(), nil
	}

	return applyRule(records, rule, t, "item_id", subjectID), nil
}

// applyRule runs the two-phase transition: every id in the deactivate set is
// switched off, then every id in the activate set is switched on. The strict
// phase ordering is what makes a hypothetical rule naming the same id in both
// sets resolve to "active".
func applyRule[S ID](records Records[S], rule Rule[S], t Transaction, subjectKey, subjectID string) Records[S] {
	updated := records.Clone()
	now := time.Now().UTC()

	for _, id := range rule.Deactivate {
		rec, ok := updated[id]
		if !ok || !rec.Active() {
			slog.Warn("status was not active on deactivation",
				"transaction", t, "status", id, subjectKey, subjectID)
			continue
		}
		rec.deactivate(now)
		slog.Debug("deactivated status", "transaction", t, "status", id, subjectKey, subjectID)
	}

	for _, id := range rule.Activate {
		rec, ok := updated[id]
		switch {
		case ok && rec.Active():
			slog.Warn("status already active",
				"transaction", t, "status", id, subjectKey, subjectID)
		case ok:
			rec.activate(now)
			slog.Debug("reactivated status", "transaction", t, "status", id, subjectKey, subjectID)
		default:
			updated[id] = NewRecord(id)
			slog.Debug("activated new status", "transaction", t, "status", id, subjectKey, subjectID)
		}
	}

	return updated
}
