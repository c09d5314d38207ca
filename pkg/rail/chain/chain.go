package chain

import (
	"github.com/ib-77/twotrack/pkg/rail"
)

// Chain wraps a rail.Result to enable fluent chaining
type Chain[S, F any] struct {
	res rail.Result[S, F]
}

// Start creates a new chain from a rail.Result
func Start[S, F any](r rail.Result[S, F]) *Chain[S, F] {
	return &Chain[S, F]{
		res: r,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[S, F any](value S) *Chain[S, F] {
	return &Chain[S, F]{
		res: rail.Success[S, F](value),
	}
}

// Result returns the underlying rail.Result
func (c *Chain[S, F]) Result() rail.Result[S, F] {
	return c.res
}

// IfSuccess performs a side effect on the success track without changing the result
func (c *Chain[S, F]) IfSuccess(effect func(S)) *Chain[S, F] {
	c.res.IfSuccess(effect)
	return c
}

// IfFailure performs a side effect on the failure track without changing the result
func (c *Chain[S, F]) IfFailure(effect func(F)) *Chain[S, F] {
	c.res.IfFailure(effect)
	return c
}

// Then chains a function that returns rail.Result[S2, F]
func Then[S, F, S2 any](c *Chain[S, F], onSuccess func(S) rail.Result[S2, F]) *Chain[S2, F] {
	return &Chain[S2, F]{
		res: rail.FlatSuccess(c.res, onSuccess),
	}
}

// Recover chains a failure handler that may switch the chain back to the success track
func Recover[S, F, F2 any](c *Chain[S, F], onFailure func(F) rail.Result[S, F2]) *Chain[S, F2] {
	return &Chain[S, F2]{
		res: rail.FlatFailure(c.res, onFailure),
	}
}

// Map chains a pure transformation of the success value
func Map[S, F, S2 any](c *Chain[S, F], onSuccess func(S) S2) *Chain[S2, F] {
	return &Chain[S2, F]{
		res: rail.MapSuccess(c.res, onSuccess),
	}
}

// MapFailure chains a pure transformation of the failure value
func MapFailure[S, F, F2 any](c *Chain[S, F], onFailure func(F) F2) *Chain[S, F2] {
	return &Chain[S, F2]{
		res: rail.MapFailure(c.res, onFailure),
	}
}

// ThenTry chains a function that returns (S2, error)
func ThenTry[S, S2 any](c *Chain[S, error], try func(S) (S2, error)) *Chain[S2, error] {
	return Then(c, func(v S) rail.Result[S2, error] {
		return rail.Try(try(v))
	})
}

// Finally collapses the chain into a final value using rail.Get
func Finally[S, F, V any](c *Chain[S, F], onSuccess func(S) V, onFailure func(F) V) V {
	return rail.Get(c.res, onSuccess, onFailure)
}
