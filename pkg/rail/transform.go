package rail

func MapSuccess[S, F, S2 any](r Result[S, F], f func(S) S2) Result[S2, F] {
	if r.IsSuccess() {
		return Success[S2, F](f(r.Success()))
	} else {
		return FailureFrom[S2](r)
	}
}

func MapFailure[S, F, F2 any](r Result[S, F], f func(F) F2) Result[S, F2] {
	if r.IsFailure() {
		return Failure[S, F2](f(r.Failure()))
	} else {
		return SuccessFrom[F2](r)
	}
}

func Map[S, F, S2, F2 any](r Result[S, F],
	onSuccess func(S) S2,
	onFailure func(F) F2) Result[S2, F2] {

	if r.IsSuccess() {
		return Success[S2, F2](onSuccess(r.Success()))
	} else {
		return Failure[S2, F2](onFailure(r.Failure()))
	}
}

func Get[S, F, V any](r Result[S, F],
	onSuccess func(S) V,
	onFailure func(F) V) V {

	if r.IsSuccess() {
		return onSuccess(r.Success())
	} else {
		return onFailure(r.Failure())
	}
}

func FlatSuccess[S, F, S2 any](r Result[S, F], f func(S) Result[S2, F]) Result[S2, F] {
	if r.IsSuccess() {
		return f(r.Success())
	} else {
		return FailureFrom[S2](r)
	}
}

func FlatFailure[S, F, F2 any](r Result[S, F], f func(F) Result[S, F2]) Result[S, F2] {
	if r.IsFailure() {
		return f(r.Failure())
	} else {
		return SuccessFrom[F2](r)
	}
}

func Flat[S, F, S2, F2 any](r Result[S, F],
	onSuccess func(S) Result[S2, F2],
	onFailure func(F) Result[S2, F2]) Result[S2, F2] {

	if r.IsSuccess() {
		return onSuccess(r.Success())
	} else {
		return onFailure(r.Failure())
	}
}
