// Package loader turns two component identifiers into live, wired objects and runs
// them. The steps execute in a fixed order and the first failure aborts the rest:
//
//  1. resolve and build the data provider
//  2. resolve and build the calculator
//  3. inject the provider into the calculator
//  4. compute
//  5. report "Resultat = <result>"
//
// Every failure is an *Error carrying the step, the identifier involved and one
// of the sentinel kinds (ErrTypeResolution, ErrInstantiation, ErrMethodNotFound,
// ErrInvocation), so callers can match with errors.Is and errors.As.
package loader
