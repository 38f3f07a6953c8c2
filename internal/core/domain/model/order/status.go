package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Preparing ──┬──> Shipped ──> Completed
//	          │                │
//	          └──> Canceled <──┘
//
// Completed and Canceled are terminal: no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	// Only pending orders may be canceled by their owner.
	Pending

	// Preparing indicates the kitchen has accepted the order.
	Preparing

	// Shipped indicates the order has left for delivery.
	Shipped

	// Completed indicates the order has been delivered.
	// This is a terminal state.
	Completed

	// Canceled indicates the order was canceled before preparation
	// finished. This is a terminal state.
	Canceled
)

// getStatusStrings returns the wire names for every Status value,
// including Unknown, to support string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Preparing: "preparing",
		Shipped:   "shipped",
		Completed: "completed",
		Canceled:  "canceled",
	}
}

// getValidStatusStrings returns only valid Status values to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Preparing: "preparing",
		Shipped:   "shipped",
		Completed: "completed",
		Canceled:  "canceled",
	}
}

// getStatusDisplayNames returns the human-readable labels exposed as
// status_display in API responses.
func getStatusDisplayNames() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Preparing: "Preparing",
		Shipped:   "Shipped",
		Completed: "Completed",
		Canceled:  "Canceled",
	}
}

// allowedTransitions defines the complete edge set of the status machine.
// Any edge missing from this map is rejected.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Preparing, Canceled},
		Preparing: {Shipped, Canceled},
		Shipped:   {Completed},
	}
}

// StatusFromString parses a wire-format status name ("pending", "shipped", ...).
// Returns an error for unknown names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("pending", "preparing", ...).
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Display returns the human-readable label of the status ("Pending", ...).
func (s Status) Display() string {
	if str, ok := getStatusDisplayNames()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is permitted from s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled
}

// CanTransitionTo reports whether the edge s -> target exists in the
// status machine, without performing the transition.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs the transition s -> target.
//
// Returns:
//   - (target, nil) when the edge is allowed
//   - (0, error) when target is not a valid status, s is terminal, or the
//     edge is not in the whitelist
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, errs.NewInvalidStateErrorWithCause(
			"status transition rejected",
			fmt.Errorf("%s is a terminal status", s.String()),
		)
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidStateErrorWithCause(
			"status transition rejected",
			fmt.Errorf("cannot transition from %s to %s", s.String(), target.String()),
		)
	}

	return target, nil
}
