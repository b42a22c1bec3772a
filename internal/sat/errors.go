package sat

import "errors"

// ErrAlreadyInitialized is returned by AddClause once Init (or Solve, which
// calls Init implicitly) has run. Clauses may only be added at the root
// level, before search begins: this core has no incremental-assumption
// support (spec Non-goals), so there is no notion of adding a clause mid-search.
var ErrAlreadyInitialized = errors.New("sat: cannot add clause after solver is initialized")

// ErrInvalidLiteral is returned by AddClause when a clause references a
// variable that was never declared via AddVariable. A zero DIMACS integer
// never reaches AddClause: FromDIMACS panics on it.
var ErrInvalidLiteral = errors.New("sat: invalid literal")
