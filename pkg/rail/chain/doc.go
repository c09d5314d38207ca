// Package chain provides a fluent wrapper around rail.Result[S, F]
// for building synchronous two-track pipelines using the rail primitives.
//
// It composes functions like FlatSuccess, MapSuccess, Try, and Get behind a
// convenient Chain[S, F] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or value
// - Then: switch to a new Result[S2, F] via a function
// - Recover: handle a failure, possibly returning to the success track
// - ThenTry: call a function (S2, error) and convert error to failure
// - Map/MapFailure: transform one track's payload
// - IfSuccess/IfFailure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
