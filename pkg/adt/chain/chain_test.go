package chain

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/adt/pkg/adt"
	"github.com/ib-77/adt/pkg/adt/either"
)

func TestStartAndResult(t *testing.T) {
	t.Parallel()

	res := either.Right[error](5)
	assert.Same(t, res, Start(res).Result())
	assert.Equal(t, 7, FromValue(7).Result().Get())
}

func TestThen_ShortCircuitOnLeft(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	called := false
	c := Then(Start(either.Left[error, int](err)), func(v int) *either.Either[error, int] {
		called = true
		return either.Right[error](v + 1)
	})

	assert.Same(t, err, c.Result().GetLeft())
	assert.False(t, called, "onRight should not be called when initial result is left")
}

func TestThen_RightPath(t *testing.T) {
	t.Parallel()

	c := Then(FromValue(3), func(v int) *either.Either[error, int] { return either.Right[error](v * 2) })
	assert.Equal(t, 6, c.Result().Get())
}

func TestThenTry(t *testing.T) {
	t.Parallel()

	t.Run("converts string", func(t *testing.T) {
		c := ThenTry(FromValue("16"), strconv.Atoi)
		assert.Equal(t, 16, c.Result().Get())
	})

	t.Run("error becomes left", func(t *testing.T) {
		c := ThenTry(FromValue(10), func(v int) (int, error) { return 0, errors.New("try-error") })
		assert.EqualError(t, c.Result().GetLeft(), "try-error")
	})

	t.Run("panic becomes left", func(t *testing.T) {
		c := ThenTry(FromValue([]int(nil)), func(v []int) (int, error) { return v[3], nil })
		var panicErr *adt.PanicError
		require.ErrorAs(t, c.Result().GetLeft(), &panicErr)
	})
}

func TestMapValidateEnsure(t *testing.T) {
	t.Parallel()

	var seen []string
	c := Map(FromValue(5), func(v int) int { return v + 3 }).
		Validate(func(v int) (bool, string) { return v > 0, "not positive" }).
		Ensure(func(v int) { seen = append(seen, strconv.Itoa(v)) })

	assert.Equal(t, 8, c.Result().Get())
	assert.Equal(t, []string{"8"}, seen)

	failed := FromValue(-1).
		Validate(func(v int) (bool, string) { return v > 0, "not positive" }).
		Ensure(func(v int) { seen = append(seen, "unexpected") })
	assert.EqualError(t, failed.Result().GetLeft(), "not positive")
	assert.Equal(t, []string{"8"}, seen)
}

func TestFinally(t *testing.T) {
	t.Parallel()

	onRight := func(v int) string { return "val:" + strconv.Itoa(v) }
	onLeft := func(err error) string { return "err" }

	assert.Equal(t, "val:2", Finally(FromValue(2), onRight, onLeft))
	assert.Equal(t, "err", Finally(Start(either.Left[error, int](errors.New("x"))), onRight, onLeft))
}
