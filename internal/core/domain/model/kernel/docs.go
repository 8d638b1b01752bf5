// Package kernel provides shared value objects used across the domain model.
//
// It contains:
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid
//   - Money: an immutable monetary amount with decimal-exact arithmetic
//
// All value objects in this package are created through constructor functions
// that validate their input; zero values are invalid and fail Validate. This
// keeps entities and aggregates that embed them in a provably valid state.
package kernel
