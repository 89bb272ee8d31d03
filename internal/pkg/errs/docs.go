// Package errs provides standardized error types for the order lifecycle
// service. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package covers the service's failure taxonomy:
//   - ObjectNotFoundError: a referenced restaurant, dish, option choice, or order is absent
//   - ValueIsInvalidError / ValueIsRequiredError: validation failures
//   - NotAuthorizedError: role, ownership, or assignment mismatches
//   - ConflictError: the object is not in the state the operation requires
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type with fields for error details
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Callers classify failures with errors.Is against the sentinels; transport
// adapters map sentinels to status codes. Anything that does not unwrap to a
// sentinel is treated as an internal error at the operation boundary.
package errs
