// Package errs provides standardized error types for the seller application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the domain model and the persistence adapters.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or breaks a business rule
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ObjectNotFoundError: a lookup by identifier returned nothing
//   - ObjectAlreadyExistsError: an insert collided with an existing identifier
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works
package errs
