// Package errs provides standardized error types for the food ordering
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or out of range
//   - ObjectNotFoundError: an object is missing or not owned by the caller
//   - ObjectAlreadyExistsError: a uniqueness constraint was violated
//   - InvalidStateError: an operation is illegal in the current lifecycle state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// The HTTP layer relies on the sentinels to translate failures into
// status codes without inspecting error strings.
package errs
