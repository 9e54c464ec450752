package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/favor-fp/favor/pkg/favor"
	"github.com/favor-fp/favor/pkg/favor/try"
)

func TestValidAndInvalid(t *testing.T) {
	t.Parallel()

	v := Valid[string](42)
	assert.True(t, v.IsValid())
	assert.Equal(t, 42, v.Get())

	i := Invalid[string, int]("A", "B")
	assert.True(t, i.IsInvalid())
	assert.Equal(t, []string{"A", "B"}, i.GetErrors())
}

func TestInvalid_NormalizesAbsentErrors(t *testing.T) {
	t.Parallel()

	i := Invalid[string, int]()
	require.True(t, i.IsInvalid())
	assert.Empty(t, i.GetErrors())
}

func TestGet_WrongVariantPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, "illegal state: Get called on an Invalid", func() {
		Invalid[string, int]("A").Get()
	})
	assert.PanicsWithError(t, "illegal state: GetErrors called on a Valid", func() {
		Valid[string](1).GetErrors()
	})
}

func TestGetErrors_ReturnsCopy(t *testing.T) {
	t.Parallel()

	i := Invalid[string, int]("A", "B")
	got := i.GetErrors()
	got[0] = "mutated"
	assert.Equal(t, []string{"A", "B"}, i.GetErrors())
}

func TestCombine_EmptyAndNil(t *testing.T) {
	t.Parallel()

	empty := Combine([]Validation[string, *int]{})
	require.True(t, empty.IsValid())
	assert.Nil(t, empty.Get())

	fromNil := Combine[string, *int](nil)
	require.True(t, fromNil.IsValid())
	assert.Nil(t, fromNil.Get())
}

func TestCombine_LastValidWins(t *testing.T) {
	t.Parallel()

	got := Combine([]Validation[string, int]{Valid[string](1), Valid[string](2), Valid[string](3)})
	require.True(t, got.IsValid())
	assert.Equal(t, 3, got.Get())
}

func TestCombine_ConcatenatesInvalidErrorsInOrder(t *testing.T) {
	t.Parallel()

	got := Combine([]Validation[string, int]{
		Valid[string](2),
		Invalid[string, int]("A"),
		Invalid[string, int]("B"),
	})
	require.True(t, got.IsInvalid())
	assert.Equal(t, []string{"A", "B"}, got.GetErrors())
}

func TestCombineGetFirstInvalid_ShortCircuits(t *testing.T) {
	t.Parallel()

	thirdCalled := false
	got := CombineGetFirstInvalid([]favor.Supplier[Validation[string, int]]{
		func() Validation[string, int] { return Valid[string](12) },
		func() Validation[string, int] { return Invalid[string, int]("A") },
		func() Validation[string, int] {
			thirdCalled = true
			return Invalid[string, int]("B")
		},
	})

	require.True(t, got.IsInvalid())
	assert.Equal(t, []string{"A"}, got.GetErrors())
	assert.False(t, thirdCalled, "the third supplier must never be invoked")
}

func TestCombineGetFirstInvalid_AllValid(t *testing.T) {
	t.Parallel()

	got := CombineGetFirstInvalid([]favor.Supplier[Validation[string, int]]{
		func() Validation[string, int] { return Valid[string](1) },
		func() Validation[string, int] { return Valid[string](2) },
	})
	require.True(t, got.IsValid())
	assert.Equal(t, 2, got.Get())
}

func TestCombineGetFirstInvalid_NilSupplierPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, "invalid argument: suppliers[1] must not be nil", func() {
		CombineGetFirstInvalid([]favor.Supplier[Validation[string, int]]{
			func() Validation[string, int] { return Valid[string](1) },
			nil,
		})
	})
}

func TestFromTry_RoundTrip(t *testing.T) {
	t.Parallel()

	v := FromTry(try.Success(11))
	require.True(t, v.IsValid())
	assert.Equal(t, 11, v.ToEither().Get())

	err := errors.New("broken")
	i := FromTry(try.Failure[int](err))
	require.True(t, i.IsInvalid())
	assert.Equal(t, []error{err}, i.GetErrors())
}

func TestFromEither(t *testing.T) {
	t.Parallel()

	v := FromEither(favor.Right[string, int](4))
	require.True(t, v.IsValid())
	assert.Equal(t, 4, v.Get())

	i := FromEither(favor.Left[string, int]("e"))
	require.True(t, i.IsInvalid())
	assert.Equal(t, []string{"e"}, i.GetErrors())
}

func TestAp_Matrix(t *testing.T) {
	t.Parallel()

	concat := func(a, b []string) []string { return append(a, b...) }
	add := func(a, b int) int { return a + b }

	vA, vB := Valid[string](1), Valid[string](2)
	iA, iB := Invalid[string, int]("A"), Invalid[string, int]("B")

	both := vA.Ap(&vB, concat, add)
	require.True(t, both.IsValid())
	assert.Equal(t, 3, both.Get())

	otherInvalid := vA.Ap(&iB, concat, add)
	require.True(t, otherInvalid.IsInvalid())
	assert.Equal(t, []string{"B"}, otherInvalid.GetErrors())

	thisInvalid := iA.Ap(&vB, concat, add)
	require.True(t, thisInvalid.IsInvalid())
	assert.Equal(t, []string{"A"}, thisInvalid.GetErrors())

	bothInvalid := iA.Ap(&iB, concat, add)
	require.True(t, bothInvalid.IsInvalid())
	assert.Equal(t, []string{"A", "B"}, bothInvalid.GetErrors())
}

func TestAp_ParametricErrorMerge(t *testing.T) {
	t.Parallel()

	// any function of (errsA, errsB) is acceptable, not just concatenation
	keepFirst := func(a, b []string) []string { return a }
	iA, iB := Invalid[string, int]("A"), Invalid[string, int]("B")

	got := iA.Ap(&iB, keepFirst, nil)
	require.True(t, got.IsInvalid())
	assert.Equal(t, []string{"A"}, got.GetErrors())
}

func TestAp_NilOtherIsNoOp(t *testing.T) {
	t.Parallel()

	v := Valid[string](1)
	assert.Equal(t, v, v.Ap(nil, nil, nil))
}

func TestAp_PanickingValueMergeRoutesToInvalid(t *testing.T) {
	t.Parallel()

	vA, vB := Valid[error](1), Valid[error](2)
	got := vA.Ap(&vB, nil, func(a, b int) int { panic(errors.New("merge failed")) })
	require.True(t, got.IsInvalid())

	errs := got.GetErrors()
	require.Len(t, errs, 1)
	assert.Equal(t, "merge failed", errs[0].Error())
}

func TestFilter(t *testing.T) {
	t.Parallel()

	positive := func(v int) bool { return v > 0 }

	kept, ok := Valid[string](3).Filter(positive)
	assert.True(t, ok)
	assert.Equal(t, 3, kept.Get())

	_, ok = Valid[string](-3).Filter(positive)
	assert.False(t, ok, "a rejected value yields no result")

	same, ok := Valid[string](-3).Filter(nil)
	assert.True(t, ok)
	assert.Equal(t, -3, same.Get())

	invalid := Invalid[string, int]("A")
	got, ok := invalid.Filter(func(int) bool {
		t.Fatal("predicate must not run on an Invalid")
		return false
	})
	assert.True(t, ok)
	assert.Equal(t, invalid, got)
}

func TestFilterOptional(t *testing.T) {
	t.Parallel()

	positive := func(v int) bool { return v > 0 }

	present := Valid[string](3).FilterOptional(positive)
	require.True(t, present.IsPresent())
	assert.Equal(t, 3, present.Get().Get())

	assert.True(t, Valid[string](-3).FilterOptional(positive).IsEmpty())
}

func TestFilterOrElse(t *testing.T) {
	t.Parallel()

	positive := func(v int) bool { return v > 0 }
	mapper := func(v int) string { return "rejected" }

	assert.Equal(t, 3, Valid[string](3).FilterOrElse(positive, mapper).Get())

	rejected := Valid[string](-3).FilterOrElse(positive, mapper)
	require.True(t, rejected.IsInvalid())
	assert.Equal(t, []string{"rejected"}, rejected.GetErrors())

	assert.PanicsWithError(t, "invalid argument: errorMapper must not be nil", func() {
		Valid[string](-3).FilterOrElse(positive, nil)
	})

	// the mapper is not required while the predicate holds
	assert.Equal(t, 3, Valid[string](3).FilterOrElse(positive, nil).Get())
}

func TestMapAndMapInvalid(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, Valid[string](3).Map(func(v int) int { return v * 2 }).Get())

	upper := Invalid[string, int]("a", "b").MapInvalid(func(errs []string) []string {
		out := make([]string, len(errs))
		for i, e := range errs {
			out[i] = strings.ToUpper(e)
		}
		return out
	})
	assert.Equal(t, []string{"A", "B"}, upper.GetErrors())

	// each is a no-op on the other variant
	i := Invalid[string, int]("a")
	assert.Equal(t, i, i.Map(func(v int) int { return v * 2 }))
	v := Valid[string](1)
	assert.Equal(t, v, v.MapInvalid(func(errs []string) []string { return nil }))
}

func TestTypeChangingMap(t *testing.T) {
	t.Parallel()

	got := Map(Valid[string](21), func(v int) int64 { return int64(v) * 2 })
	require.True(t, got.IsValid())
	assert.Equal(t, int64(42), got.Get())

	carried := Map(Invalid[string, int]("A"), func(v int) int64 { return int64(v) })
	require.True(t, carried.IsInvalid())
	assert.Equal(t, []string{"A"}, carried.GetErrors())
}

func TestToEither(t *testing.T) {
	t.Parallel()

	right := Valid[string](9).ToEither()
	require.True(t, right.IsRight())
	assert.Equal(t, 9, right.Get())

	left := Invalid[string, int]("A", "B").ToEither()
	require.True(t, left.IsLeft())
	assert.Equal(t, []string{"A", "B"}, left.GetLeft())
}

func TestToOptional(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 9, Valid[string](9).ToOptional().Get())
	assert.True(t, Valid[string, *int](nil).ToOptional().IsEmpty())
	assert.True(t, Invalid[string, int]("A").ToOptional().IsEmpty())
}

func TestFold(t *testing.T) {
	t.Parallel()

	got := Fold(Valid[string](2),
		func(errs []string) string { return "invalid" },
		func(v int) string { return "valid" })
	assert.Equal(t, "valid", got)

	got = Fold(Invalid[string, int]("A"),
		func(errs []string) string { return strings.Join(errs, ",") },
		func(v int) string { return "valid" })
	assert.Equal(t, "A", got)
}
