// Package order contains the order aggregate of the food ordering domain.
//
// The aggregate root is Order, which owns its line items by composition and
// is responsible for total computation and the status lifecycle. LineItem
// captures a price snapshot of a menu item at creation time, so later
// catalog price changes never affect past orders.
//
// The order lifecycle is a small state machine:
//
//	pending ──┬──> preparing ──┬──> shipped ──> completed
//	          │                │
//	          └──> canceled <──┘
//
// Completed and canceled are terminal. Customer-initiated cancellation
// (Order.Cancel) is only permitted from pending; an administrative
// transition to canceled from preparing goes through Order.UpdateStatus.
//
// All monetary values use fixed-point decimals so repeated additions never
// accumulate floating-point drift.
package order
