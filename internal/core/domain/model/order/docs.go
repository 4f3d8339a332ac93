// Package order provides the domain model for sales order management: the
// Order aggregate root, its Items, and the owned child entities (shipment
// address, recurrence spec, backorder records, status records).
//
// The package includes:
//   - Order: The aggregate root that owns items, exactly one shipment address,
//     an optional recurrence spec, and the header status records
//   - Item: An order line with its own status records and optional backorder
//   - ShipmentAddress, RecurrenceSpec, Backorder: owned value objects and
//     child entities that never outlive the order
//
// Key business rules:
//   - Status changes go through the transition engine in the status package,
//     guarded by the status guard tables
//   - Cancelling an order cascades to every item first; if every item of an
//     order ends up cancelled, the order header is cancelled as a side effect
//   - Recurrence details can only change on a recurrent order that is not in
//     transit; only recurrent orders can be restarted
//   - Detail changes are permission-gated: system actors and customer actors
//     are checked against different transactions
//
// The package follows Domain-Driven Design principles: private fields,
// validated constructors, and rich behavior on the aggregate root.
package order
