package result

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoverWrongVariant(t *testing.T, fn func()) (wva *WrongVariantAccess) {
	t.Helper()
	defer func() {
		rec := recover()
		require.NotNil(t, rec, "expected a panic")
		var ok bool
		wva, ok = rec.(*WrongVariantAccess)
		require.True(t, ok, "panic value is %T, not *WrongVariantAccess", rec)
	}()
	fn()
	return nil
}

func TestResult(t *testing.T) {
	resultA := Ok[string]("good")
	resultB := Err[string](fmt.Errorf("bad"))

	require.True(t, resultA.IsOk())
	require.Equal(t, "good", resultA.Unwrap())

	require.True(t, resultB.IsErr())
	require.EqualError(t, resultB.UnwrapErr(), "bad")
}

func TestPredicates(t *testing.T) {
	ok := Ok[string](2)
	bad := Err[int]("Nothing here")

	assert.True(t, ok.IsOk())
	assert.False(t, ok.IsErr())
	assert.False(t, bad.IsOk())
	assert.True(t, bad.IsErr())

	for i := 0; i < 5; i++ {
		assert.True(t, ok.IsOk())
		assert.True(t, bad.IsErr())
	}
	assert.Equal(t, Ok[string](2), ok)
}

func TestFalsyPayloadsKeepTheirVariant(t *testing.T) {
	assert.True(t, Ok[string](0).IsOk())
	assert.True(t, Ok[string]("").IsOk())
	assert.True(t, Ok[string](false).IsOk())
	assert.True(t, Ok[string, error](nil).IsOk())

	assert.True(t, Err[int](0).IsErr())
	assert.True(t, Err[int, error](nil).IsErr())
	assert.True(t, Failure[int, string]{}.IsErr())
	assert.True(t, Success[int, string]{}.IsOk())
}

func TestIsOkAnd(t *testing.T) {
	calls := 0
	gt := func(n uint) func(uint) bool {
		return func(x uint) bool {
			calls++
			return x > n
		}
	}

	x := Ok[string, uint](2)
	assert.True(t, x.IsOkAnd(gt(1)))
	assert.False(t, x.IsOkAnd(gt(4)))
	assert.Equal(t, 2, calls)

	y := Err[uint]("hey")
	assert.False(t, y.IsOkAnd(gt(1)))
	assert.Equal(t, 2, calls)
}

func TestIsErrAnd(t *testing.T) {
	calls := 0
	longer := func(n int) func(string) bool {
		return func(e string) bool {
			calls++
			return len(e) > n
		}
	}

	x := Err[uint]("error")
	assert.True(t, x.IsErrAnd(longer(3)))
	assert.False(t, x.IsErrAnd(longer(10)))
	assert.Equal(t, 2, calls)

	y := Ok[string, uint](2)
	assert.False(t, y.IsErrAnd(longer(3)))
	assert.Equal(t, 2, calls)
}

func TestUnwrap(t *testing.T) {
	assert.Equal(t, uint(2), Ok[string, uint](2).Unwrap())
	assert.Equal(t, "emergency failure", Err[uint]("emergency failure").UnwrapErr())

	wva := recoverWrongVariant(t, func() {
		Err[uint]("emergency failure").Unwrap()
	})
	assert.Equal(t, "Unwrap", wva.Op)
	assert.Equal(t, "called `Result.Unwrap()` on an `Err` value: emergency failure", wva.Error())

	wva = recoverWrongVariant(t, func() {
		Ok[string, uint](2).UnwrapErr()
	})
	assert.Equal(t, "UnwrapErr", wva.Op)
	assert.Equal(t, "called `Result.UnwrapErr()` on an `Ok` value: 2", wva.Error())
}

func TestExpect(t *testing.T) {
	assert.Equal(t, uint(2), Ok[string, uint](2).Expect("Testing expect"))
	assert.Equal(t, "boom", Err[uint]("boom").ExpectErr("Testing expect_err"))

	assert.PanicsWithError(t, "Testing expect_err: 2", func() {
		Ok[string, uint](2).ExpectErr("Testing expect_err")
	})

	wva := recoverWrongVariant(t, func() {
		Err[uint]("boom").Expect("config must load")
	})
	assert.Equal(t, "Expect", wva.Op)
	assert.Equal(t, "config must load: boom", wva.Message)
}

func TestUnwrapOr(t *testing.T) {
	assert.Equal(t, uint(9), Ok[string, uint](9).UnwrapOr(2))
	assert.Equal(t, uint(2), Err[uint]("error").UnwrapOr(2))
}

func TestUnwrapOrElse(t *testing.T) {
	calls := 0
	count := func(e string) int {
		calls++
		return len(e)
	}

	assert.Equal(t, 2, Ok[string](2).UnwrapOrElse(count))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 3, Err[int]("foo").UnwrapOrElse(count))
	assert.Equal(t, 1, calls)
}

func TestCommaOk(t *testing.T) {
	v, ok := Ok[string, uint](2).Ok()
	assert.True(t, ok)
	assert.Equal(t, uint(2), v)

	_, ok = Ok[string, uint](2).Err()
	assert.False(t, ok)

	v, ok = Err[uint]("Nothing here").Ok()
	assert.False(t, ok)
	assert.Zero(t, v)

	e, ok := Err[uint]("Nothing here").Err()
	assert.True(t, ok)
	assert.Equal(t, "Nothing here", e)
}

func TestTypeSwitchNarrowing(t *testing.T) {
	describe := func(r Result[int, string]) string {
		switch v := r.(type) {
		case Success[int, string]:
			return "ok " + strconv.Itoa(v.Value)
		case Failure[int, string]:
			return "err " + v.Value
		}
		return "unreachable"
	}

	assert.Equal(t, "ok 5", describe(Ok[string](5)))
	assert.Equal(t, "err bad", describe(Err[int]("bad")))
}

func TestMap(t *testing.T) {
	double := func(v uint) uint { return v * 2 }

	assert.Equal(t, Ok[string, uint](4), Map(Ok[string, uint](2), double))
	assert.Equal(t, Err[uint]("error"), Map(Err[uint]("error"), double))

	calls := 0
	length := func(s string) int {
		calls++
		return len(s)
	}
	assert.Equal(t, Ok[string](3), Map(Ok[string]("foo"), length))
	assert.Equal(t, Err[int]("error"), Map(Err[string]("error"), length))
	assert.Equal(t, 1, calls)
}

func TestMapErr(t *testing.T) {
	calls := 0
	upper := func(e string) string {
		calls++
		return strings.ToUpper(e)
	}

	assert.Equal(t, Ok[string, uint](2), MapErr(Ok[string, uint](2), upper))
	assert.Equal(t, 0, calls)
	assert.Equal(t, Err[uint]("ERROR"), MapErr(Err[uint]("error"), upper))
	assert.Equal(t, 1, calls)

	wrapped := MapErr(Err[uint]("error"), func(e string) error { return fmt.Errorf("wrapped: %s", e) })
	assert.EqualError(t, wrapped.UnwrapErr(), "wrapped: error")
}

func TestPassThroughKeepsIdentity(t *testing.T) {
	ok := Ok[string](5)
	same := MapErr(ok, strings.ToUpper)
	assert.True(t, ok == same)
	assert.True(t, ok == Or(ok, Err[int]("other")))
	assert.True(t, ok == OrElse(ok, func(string) Result[int, string] { return Ok[string](0) }))

	bad := Err[int]("a")
	assert.True(t, bad == Map(bad, func(x int) int { return x + 1 }))
	assert.True(t, bad == AndThen(bad, func(x int) Result[int, string] { return Ok[string](x) }))
	assert.True(t, bad == And(bad, Ok[string](1)))

	// The output type differs, so a new variant carries the same payload.
	asInt := MapErr(ok, func(e string) int { return len(e) })
	assert.Equal(t, Ok[int](5), asInt)
	asStr := Map(bad, strconv.Itoa)
	assert.Equal(t, Err[string]("a"), asStr)
}

func TestMapOr(t *testing.T) {
	calls := 0
	length := func(s string) int {
		calls++
		return len(s)
	}

	assert.Equal(t, 3, MapOr(Ok[string]("foo"), 42, length))
	assert.Equal(t, 42, MapOr(Err[string]("bar"), 42, length))
	assert.Equal(t, 1, calls)
}

func TestMapOrElse(t *testing.T) {
	k := 21
	defaults := 0
	def := func() int {
		defaults++
		return k * 2
	}
	length := func(s string) int { return len(s) }

	assert.Equal(t, 3, MapOrElse(Ok[string]("foo"), def, length))
	assert.Equal(t, 0, defaults)
	assert.Equal(t, 42, MapOrElse(Err[string]("bar"), def, length))
	assert.Equal(t, 1, defaults)
}

func TestInspect(t *testing.T) {
	var captured uint

	x := Ok[string, uint](4)
	y := x.Inspect(func(v uint) { captured = v })
	assert.Equal(t, uint(4), captured)
	assert.True(t, x == y)

	captured = 0
	e := Err[uint]("error")
	y = e.Inspect(func(v uint) { captured = v })
	assert.Zero(t, captured)
	assert.True(t, e == y)
}

func TestInspectErr(t *testing.T) {
	var captured string

	x := Err[uint]("error")
	y := x.InspectErr(func(e string) { captured = e })
	assert.Equal(t, "error", captured)
	assert.True(t, x == y)

	captured = ""
	o := Ok[string, uint](4)
	y = o.InspectErr(func(e string) { captured = e })
	assert.Empty(t, captured)
	assert.True(t, o == y)
}

func TestAnd(t *testing.T) {
	assert.Equal(t, Err[string]("late error"), And(Ok[string, uint](2), Err[string]("late error")))
	assert.Equal(t, Err[string]("early error"), And(Err[uint]("early error"), Ok[string]("foo")))
	assert.Equal(t, Err[string]("not a 2"), And(Err[uint]("not a 2"), Err[string]("late error")))
	assert.Equal(t, Ok[string]("different result type"), And(Ok[string, uint](2), Ok[string]("different result type")))

	assert.Equal(t, Err[int]("a"), And(Err[int]("a"), Ok[string](1)))
	assert.Equal(t, Ok[string](2), And(Ok[string](1), Ok[string](2)))
}

func TestAndThen(t *testing.T) {
	calls := 0
	sqThenToString := func(x uint32) Result[string, string] {
		calls++
		sq := uint64(x) * uint64(x)
		if sq > 0xffffffff {
			return Err[string]("overflowed")
		}
		return Ok[string](strconv.FormatUint(sq, 10))
	}

	assert.Equal(t, Ok[string]("4"), AndThen(Ok[string, uint32](2), sqThenToString))
	assert.Equal(t, Err[string]("overflowed"), AndThen(Ok[string, uint32](1_000_000), sqThenToString))
	assert.Equal(t, 2, calls)
	assert.Equal(t, Err[string]("not a number"), AndThen(Err[uint32]("not a number"), sqThenToString))
	assert.Equal(t, 2, calls)
}

func TestOr(t *testing.T) {
	assert.Equal(t, Ok[string, uint](2), Or(Ok[string, uint](2), Err[uint]("late error")))
	assert.Equal(t, Ok[string, uint](2), Or(Err[uint]("early error"), Ok[string, uint](2)))
	assert.Equal(t, Err[uint]("not a 2"), Or(Err[uint]("not a 2"), Err[uint]("not a 2")))
	assert.Equal(t, Ok[error, uint](2), Or(Ok[string, uint](2), Err[uint](fmt.Errorf("other type"))))
}

func TestOrElse(t *testing.T) {
	sq := func(x uint) Result[uint, uint] { return Ok[uint](x * x) }
	errf := func(x uint) Result[uint, uint] { return Err[uint](x) }

	assert.Equal(t, Ok[uint, uint](2), OrElse(OrElse(Ok[uint, uint](2), sq), sq))
	assert.Equal(t, Ok[uint, uint](2), OrElse(OrElse(Ok[uint, uint](2), errf), sq))
	assert.Equal(t, Ok[uint, uint](9), OrElse(OrElse(Err[uint, uint](3), sq), errf))
	assert.Equal(t, Err[uint, uint](3), OrElse(OrElse(Err[uint, uint](3), errf), errf))
}

func TestMatch(t *testing.T) {
	okCalls, errCalls := 0, 0
	inc := func(x int) int {
		okCalls++
		return x + 1
	}
	neg := func(string) int {
		errCalls++
		return -1
	}

	assert.Equal(t, 2, Match(Ok[string](1), inc, neg))
	assert.Equal(t, 1, okCalls)
	assert.Equal(t, 0, errCalls)

	assert.Equal(t, -1, Match(Err[int]("x"), inc, neg))
	assert.Equal(t, 1, okCalls)
	assert.Equal(t, 1, errCalls)

	byLen := Match(Err[int]("error"), func(v int) int { return v * 2 }, func(e string) int { return len(e) })
	assert.Equal(t, 5, byLen)
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, Ok[uint]("hello"), Flatten(Ok[uint](Ok[uint]("hello"))))
	assert.Equal(t, Err[string, uint](6), Flatten(Ok[uint](Err[string, uint](6))))
	assert.Equal(t, Err[string, uint](6), Flatten(Err[Result[string, uint]](uint(6))))
}

func TestContains(t *testing.T) {
	x := Ok[string, uint](2)
	assert.True(t, Contains(x, 2))
	assert.False(t, Contains(x, 3))
	assert.False(t, Contains(Err[uint]("Some error message"), 2))

	assert.False(t, ContainsErr(x, "Some error message"))
	y := Err[uint]("Some error message")
	assert.True(t, ContainsErr(y, "Some error message"))
	assert.False(t, ContainsErr(y, "Some other message"))
}

func TestAll(t *testing.T) {
	var seen []uint
	for v := range Ok[string, uint](7).All() {
		seen = append(seen, v)
	}
	assert.Equal(t, []uint{7}, seen)

	seen = nil
	for v := range Err[uint]("nothing!").All() {
		seen = append(seen, v)
	}
	assert.Empty(t, seen)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Ok(5)", Ok[string](5).String())
	assert.Equal(t, "Err(bad)", Err[int]("bad").String())
	assert.Equal(t, "Ok(5)", fmt.Sprint(Ok[string](5)))
}

func TestChaining(t *testing.T) {
	r := Map(AndThen(Map(Ok[string](2), func(x int) int { return x * 2 }),
		func(x int) Result[int, string] { return Ok[string](x + 1) }),
		strconv.Itoa)
	assert.Equal(t, Ok[string]("5"), r)

	r2 := Map(OrElse(Map(Err[int]("initial error"), func(x int) int { return x * 2 }),
		func(string) Result[int, string] { return Ok[string](10) }),
		func(x int) int { return x + 1 })
	assert.Equal(t, Ok[string](11), r2)
}

func TestNilResultPanics(t *testing.T) {
	var r Result[int, string]
	assert.PanicsWithValue(t, ErrUninitialized, func() {
		Map(r, func(x int) int { return x })
	})
	assert.PanicsWithValue(t, ErrUninitialized, func() {
		Match(r, func(int) bool { return true }, func(string) bool { return false })
	})
	assert.PanicsWithValue(t, ErrUninitialized, func() {
		Flatten(Ok[string, Result[int, string]](nil))
	})
}

func TestConcurrentReads(t *testing.T) {
	shared := Ok[string](42)
	failed := Err[int]("shared")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if !shared.IsOk() || shared.Unwrap() != 42 {
					t.Error("shared Ok changed")
					return
				}
				if MapOr(failed, -1, func(x int) int { return x }) != -1 {
					t.Error("shared Err changed")
					return
				}
			}
		}()
	}
	wg.Wait()
}
