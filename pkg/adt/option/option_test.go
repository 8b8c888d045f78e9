package option

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSome(t *testing.T) {
	t.Parallel()

	o := Some("OK")
	assert.True(t, o.IsDefined())
	assert.False(t, o.IsEmpty())
	assert.Equal(t, "OK", o.Get())
	assert.Equal(t, "OK", o.GetOrElseGet("else"))
	assert.Equal(t, []string{"OK"}, o.ToSlice())
	assert.Equal(t, "Some(OK)", o.String())
}

func TestNothing(t *testing.T) {
	t.Parallel()

	o := Nothing[string]()
	assert.Same(t, o, Nothing[string]())
	assert.False(t, o.IsDefined())
	assert.PanicsWithError(t, ErrNothing.Error(), func() { o.Get() })
	assert.Equal(t, "else", o.GetOrElse(func() string { return "else" }))
	assert.Equal(t, "else", o.GetOrElseGet("else"))
	assert.Empty(t, o.ToSlice())
	assert.Nil(t, o.ToPtr())
	assert.Equal(t, "Nothing", o.String())

	var m *Maybe[string] = o
	assert.Same(t, m, Nothing[string]())
}

func TestOfAndFromPtr(t *testing.T) {
	t.Parallel()

	assert.True(t, Of(3).IsDefined())
	assert.Same(t, Nothing[*int](), Of[*int](nil))
	assert.Same(t, Nothing[[]int](), Of[[]int](nil))

	v := 4
	assert.Equal(t, 4, FromPtr(&v).Get())
	assert.Same(t, Nothing[int](), FromPtr[int](nil))
	assert.Equal(t, 4, *Some(4).ToPtr())
}

func TestEquals(t *testing.T) {
	t.Parallel()

	assert.True(t, Some("OK").Equals(Some("OK")))
	assert.True(t, Some([]int{1}).Equals(Some([]int{1})))
	assert.False(t, Some("OK").Equals(Some("KO")))
	assert.False(t, Some("OK").Equals(Nothing[string]()))
	assert.False(t, Some("OK").Equals("OK"))
	assert.False(t, Some("OK").Equals(nil))
	assert.True(t, Nothing[string]().Equals(Nothing[string]()))
	assert.False(t, Nothing[string]().Equals(Nothing[int]()))
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	some := Some(1)
	assert.Same(t, some, some.OrElse(func() *Option[int] { return Some(2) }))
	assert.Equal(t, 2, Nothing[int]().OrElse(func() *Option[int] { return Some(2) }).Get())
}

func TestMapFlatMapFilter(t *testing.T) {
	t.Parallel()

	double := func(x int) int { return x * 2 }
	assert.Equal(t, 4, Map(Some(2), double).Get())
	assert.Same(t, Nothing[int](), Map(Nothing[int](), double))

	positive := func(x int) *Option[int] {
		if x > 0 {
			return Some(x)
		}
		return Nothing[int]()
	}
	assert.Equal(t, 3, FlatMap(Some(3), positive).Get())
	assert.False(t, FlatMap(Some(-3), positive).IsDefined())

	even := func(x int) bool { return x%2 == 0 }
	assert.Equal(t, 2, Filter(Some(2), even).Get())
	assert.Same(t, Nothing[int](), Filter(Some(3), even))
}

func TestJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name *Option[string] `json:"name"`
		Age  *Option[int]    `json:"age"`
	}

	data, err := json.Marshal(payload{Name: Some("ann"), Age: Nothing[int]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"ann","age":null}`, string(data))

	var back struct {
		Name Option[string] `json:"name"`
		Age  Option[int]    `json:"age"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"name":"bob","age":null}`), &back))
	assert.Equal(t, "bob", back.Name.Get())
	assert.False(t, back.Age.IsDefined())
	assert.False(t, back.Age.Equals(Nothing[int]()))

	assert.ErrorIs(t, Nothing[int]().UnmarshalJSON([]byte(`3`)), ErrJSON)
	assert.False(t, Nothing[int]().IsDefined())

	some := Some(1)
	assert.ErrorIs(t, json.Unmarshal([]byte(`2`), some), ErrJSON)
	assert.Equal(t, 1, some.Get())
}

func TestFromJSON(t *testing.T) {
	t.Parallel()

	o, err := FromJSON[int]([]byte(`5`))
	require.NoError(t, err)
	assert.True(t, o.Equals(Some(5)))

	o, err = FromJSON[int]([]byte(`null`))
	require.NoError(t, err)
	assert.Same(t, Nothing[int](), o)

	_, err = FromJSON[int]([]byte(`"x"`))
	assert.ErrorIs(t, err, ErrJSON)
}

func TestMapIdentityProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var o *Option[int]
		if rapid.Bool().Draw(t, "some") {
			o = Some(rapid.Int().Draw(t, "value"))
		} else {
			o = Nothing[int]()
		}

		mapped := Map(o, func(x int) int { return x })
		if !mapped.Equals(o) {
			t.Fatalf("identity law violated: %v != %v", o, mapped)
		}
	})
}
