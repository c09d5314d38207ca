package rail

// Try lifts a Go (value, error) pair into a Result with error as the failure
// type. A non-nil err picks the failure track and discards value.
func Try[S any](value S, err error) Result[S, error] {
	if err != nil {
		return Failure[S, error](err)
	}
	return Success[S, error](value)
}

// Unwrap is the inverse of Try: success yields (payload, nil), failure
// yields (zero S, payload).
func Unwrap[S any](r Result[S, error]) (S, error) {
	if r.IsSuccess() {
		return r.Success(), nil
	}
	var zero S
	return zero, r.Failure()
}
