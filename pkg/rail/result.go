package rail

import (
	"time"

	"github.com/google/uuid"
)

// Result holds the outcome of an operation on exactly one of two tracks:
// success with a payload of type S, or failure with a payload of type F.
// The track is fixed by the constructor and never changes afterwards.
type Result[S, F any] struct {
	id        uuid.UUID
	createdAt time.Time
	success   S
	failure   F
	isSuccess bool
}

func Success[S, F any](value S) Result[S, F] {
	return Result[S, F]{
		success:   value,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[S, F any](value F) Result[S, F] {
	return Result[S, F]{
		failure:   value,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// SuccessFrom rebinds the failure type of a success-track result to F2,
// keeping the success payload, id and creation time. The new failure type
// comes first so call sites can write SuccessFrom[MyErr](r).
func SuccessFrom[F2, S, F any](from Result[S, F]) Result[S, F2] {
	return Result[S, F2]{
		success:   from.success,
		isSuccess: from.isSuccess,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// FailureFrom rebinds the success type of a failure-track result to S2,
// keeping the failure payload, id and creation time.
func FailureFrom[S2, S, F any](from Result[S, F]) Result[S2, F] {
	return Result[S2, F]{
		failure:   from.failure,
		isSuccess: from.isSuccess,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[S, F]) Success() S {
	return r.success
}

func (r Result[S, F]) Failure() F {
	return r.failure
}

func (r Result[S, F]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[S, F]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[S, F]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[S, F]) Id() uuid.UUID {
	return r.id
}

// IsEmpty reports whether r is the unconstructed zero value.
func (r Result[S, F]) IsEmpty() bool {
	return r.id == uuid.Nil
}

// IfSuccess runs effect with the success payload when r is on the success
// track, then returns r unchanged. A nil effect is skipped.
func (r Result[S, F]) IfSuccess(effect func(S)) Result[S, F] {
	if r.isSuccess && effect != nil {
		effect(r.success)
	}
	return r
}

// IfFailure runs effect with the failure payload when r is on the failure
// track, then returns r unchanged. A nil effect is skipped.
func (r Result[S, F]) IfFailure(effect func(F)) Result[S, F] {
	if !r.isSuccess && effect != nil {
		effect(r.failure)
	}
	return r
}
