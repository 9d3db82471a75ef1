// Package either contains Either[E, T], the result-or-error value used by the
// exercises to make failure explicit instead of returning early or panicking.
//
// An Either is a Success carrying a T or a Failure carrying an E, never both.
// Map and Chain only run on a Success; a Failure flows through them untouched,
// so the first failure of a pipeline is what comes out at the end.
//
// Highlights:
// - Success/Failure: construct Either[E, T]
// - Map/Chain: transform or switch a successful value
// - MapF/ChainF: point-free forms for fp.Pipe
// - Validate/ValidateAll: turn predicates into failures
// - FromResult: lift a Go (T, error) return
// - Fold/GetOrElse: reduce to a plain value
package either
