// Package errs provides standardized error types for the returns service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying the error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// Application-level sentinels that describe return-request business rules
// (duplicate request, not editable, wrong owner) live next to the command
// handlers that produce them; this package covers the generic cases shared
// by every layer.
package errs
