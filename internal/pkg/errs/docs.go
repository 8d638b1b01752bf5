// Package errs provides standardized error types for the shop application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package defines one type per error scenario:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value violates a business rule
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//   - ObjectNotFoundError: the target of an operation does not exist
//   - ReferenceNotFoundError: an object referenced by the input does not exist
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - an Error() method that formats the message
//   - an Unwrap() method so errors.Is matches the sentinel
//
// The distinction between ObjectNotFoundError and ReferenceNotFoundError
// matters to transports: a missing target order is a 404, while an order
// request that points at a non-existent product or user is bad input and
// maps to a 400.
package errs
