// Package errs provides the error taxonomy shared by the domain, the
// application layer and the adapters.
//
// Every kind follows one pattern:
//   - a sentinel (ErrConflict, ErrObjectNotFound, ...) used with errors.Is
//   - a struct carrying details, with constructors with and without Cause
//   - Error() formatting a human-readable message
//   - Unwrap() returning the sentinel
//
// Kinds and their meaning:
//   - ValueIsRequiredError, ValueIsInvalidError: malformed input, including
//     identifier format violations
//   - ValueIsOutOfRangeError: numeric input outside its bounds
//   - ObjectNotFoundError: referenced entity does not exist
//   - ForbiddenError, UnauthorizedError: actor rejected
//   - ConflictError: uniqueness violation or forbidden state transition
//   - SequenceOverflowError: numeric serial space exhausted
//   - GenerationExhaustedError: bounded identifier retry failed
//   - MismatchError: two related values disagree
package errs
