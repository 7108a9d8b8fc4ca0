// Package errs provides the typed errors shared by the marketplace service.
// Every kind follows the same pattern so the transport layer can map it to a
// stable outcome with errors.Is / errors.As:
//   - a sentinel error variable (e.g., ErrObjectNotFound)
//   - a struct type carrying the details
//   - constructors with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Kinds:
//   - ObjectNotFoundError: a lookup by id matched nothing (ParamName tells order from product)
//   - ValueIsInvalidError, ValueIsRequiredError, ValueIsOutOfRangeError: input validation
//   - ForbiddenError: the resolved actor may not perform the action
//   - ConcurrencyConflictError: a row lock could not be acquired within the bounded wait
package errs
