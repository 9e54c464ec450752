package favor

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNil(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNil(nil))

	var p *int
	assert.True(t, IsNil(p), "typed nil pointer")

	var s []int
	assert.True(t, IsNil(s), "nil slice")

	var f func()
	assert.True(t, IsNil(f), "nil func")

	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil([]int{}))
	v := 1
	assert.False(t, IsNil(&v))
}

func TestRequireNonNil(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { RequireNonNil(1, "value") })
	assert.PanicsWithError(t, "invalid argument: value must not be nil", func() {
		RequireNonNil(nil, "value")
	})
}

func TestCollectErrors(t *testing.T) {
	t.Parallel()

	assert.Empty(t, CollectErrors(nil))

	single := errors.New("one")
	assert.Equal(t, []error{single}, CollectErrors(single))

	a, b := errors.New("a"), errors.New("b")
	assert.Equal(t, []error{a, b}, CollectErrors(errors.Join(a, b)))
}

func TestProtect(t *testing.T) {
	t.Parallel()

	v, err := Protect(func() int { return 3 })
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	boom := errors.New("boom")
	_, err = Protect(func() int { panic(boom) })
	assert.Same(t, boom, err)

	_, err = Protect(func() int { panic("not an error") })
	require.Error(t, err)
	assert.Equal(t, "not an error", err.Error())
}

func TestErrorTypes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "invalid argument: x missing", Argumentf("%s missing", "x").Error())
	assert.Equal(t, "illegal state: wrong variant", Statef("wrong variant").Error())
}

func TestEither(t *testing.T) {
	t.Parallel()

	r := Right[string](7)
	require.True(t, r.IsRight())
	assert.Equal(t, 7, r.Get())

	l := Left[string, int]("oops")
	require.True(t, l.IsLeft())
	assert.Equal(t, "oops", l.GetLeft())

	assert.PanicsWithError(t, "illegal state: Get called on a Left", func() { l.Get() })
	assert.PanicsWithError(t, "illegal state: GetLeft called on a Right", func() { r.GetLeft() })
}

func TestEitherSwapFoldMap(t *testing.T) {
	t.Parallel()

	r := Right[string](7)
	swapped := r.Swap()
	require.True(t, swapped.IsLeft())
	assert.Equal(t, 7, swapped.GetLeft())

	got := FoldEither(r,
		func(l string) string { return "left:" + l },
		func(v int) string { return "right:" + strconv.Itoa(v) })
	assert.Equal(t, "right:7", got)

	mapped := MapEither(r, strconv.Itoa)
	assert.Equal(t, "7", mapped.Get())

	left := MapEither(Left[string, int]("e"), strconv.Itoa)
	require.True(t, left.IsLeft())
	assert.Equal(t, "e", left.GetLeft())

	mappedLeft := MapLeft(Left[string, int]("e"), func(s string) int { return len(s) })
	assert.Equal(t, 1, mappedLeft.GetLeft())
}
