// Package status implements the status transition and guard engine for sales
// orders and their items.
//
// The package is built from four pieces:
//   - Closed enumerations of order-level and item-level status ids, and of the
//     business transactions that may touch them. Every transaction is statically
//     bound to exactly one domain (order or item).
//   - An immutable rule table mapping each transaction to the set of status ids
//     it activates and the set it deactivates.
//   - An immutable guard table mapping each status id to the set of transactions
//     it forbids while active.
//   - A pure transition engine and guard checker operating on per-status-id
//     record slots.
//
// Records are kept in a map keyed by status id, which makes the "at most one
// record per id" invariant structural: activating an id whose record already
// exists reactivates it in place, preserving the record's identity and creation
// timestamp. Deactivation is always fully applied before activation.
//
// The tables are package-level constants built once at init; no runtime
// mutation path exists.
package status
