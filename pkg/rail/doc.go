// Package rail provides the two-track outcome container Result[S, F]:
// an immutable value riding exactly one of two tracks, success (payload S)
// or failure (payload F), fixed at construction.
//
// Operations that preserve both type parameters are methods; operations
// whose output type differs from the receiver's are package-level generic
// functions taking the Result as first argument.
//
// Key operations:
// - Success/Failure: construct Result[S, F]
// - IsSuccess/IsFailure: inspect the active track
// - IfSuccess/IfFailure: side effects without changing the result
// - MapSuccess/MapFailure/Map: transform one track's payload
// - FlatSuccess/FlatFailure/Flat: compose Result-returning functions
// - Get: reduce to a concrete value via success/failure handlers
// - Try/Unwrap: bridge to and from the (value, error) pair
package rail
