// Package errs provides the typed errors shared by the dispatch domain,
// application and adapters.
//
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) returned by Unwrap
//   - a struct carrying the failure details
//   - constructors with and without a cause
//
// Besides the generic validation errors the package defines the dispatch
// specific failures: AlreadyExistsError for duplicate business keys,
// CapacityExceededError for orders no vehicle can ever carry,
// TransitionNotAllowedError for state machine and driver guard violations and
// RebalanceValidationError for a computed rebalance that breaks a fleet invariant.
package errs
