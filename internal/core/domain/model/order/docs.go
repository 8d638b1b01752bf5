// Package order provides the Order aggregate and its supporting domain types.
//
// The package includes:
//   - Order: the aggregate root owning line items, pricing, and lifecycle state
//   - LineItem: a single priced product-and-quantity entry with a frozen snapshot
//   - CustomerRef: a tagged variant identifying either a registered user or a guest
//   - Status and PaymentStatus: the enumerated lifecycle states
//
// Key business rules:
//   - the order total is always recomputed from line subtotals, never taken
//     from input
//   - a line's subtotal equals quantity times its unit-price snapshot
//   - snapshots are frozen at creation; later catalog edits never change a
//     persisted order
//   - status changes validate membership in the enumerated set only; any
//     status may follow any other
//
// The package follows Domain-Driven Design principles: entities are built
// through validating constructors, and Restore functions rehydrate persisted
// state without re-running creation-time derivations.
package order
