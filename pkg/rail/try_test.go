package rail

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTry_NilErrorIsSuccess(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	r := Try(strconv.Atoi("12"))

	req.True(r.IsSuccess())
	req.Equal(12, r.Success())
}

func TestTry_ErrorIsFailure(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	r := Try(strconv.Atoi("nope"))

	req.True(r.IsFailure())
	req.Error(r.Failure())
}

func TestTry_ZeroValueWithNilErrorIsSuccess(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	r := Try(0, nil)

	req.True(r.IsSuccess())
	req.Equal(0, r.Success())
}

func TestTry_DiscardsValueOnError(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	boom := errors.New("boom")

	r := Try(99, boom)

	req.True(r.IsFailure())
	req.ErrorIs(r.Failure(), boom)
	req.Equal(0, r.Success())
}

func TestUnwrap_Success(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	v, err := Unwrap(Success[string, error]("ok"))

	req.NoError(err)
	req.Equal("ok", v)
}

func TestUnwrap_Failure(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	boom := errors.New("boom")

	v, err := Unwrap(Failure[string](boom))

	req.ErrorIs(err, boom)
	req.Equal("", v)
}

func TestTryUnwrap_RoundTrip(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	v, err := Unwrap(Try(strconv.Atoi("7")))
	req.NoError(err)
	req.Equal(7, v)

	_, err = Unwrap(Try(strconv.Atoi("x")))
	req.Error(err)
}
