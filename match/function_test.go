package match_test

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/byte4ever/combi"
	"github.com/byte4ever/combi/match"
)

type shape interface{ area() float64 }

type square struct{ side float64 }

func (s square) area() float64 { return s.side * s.side }

type rect struct{ w, h float64 }

func (r rect) area() float64 { return r.w * r.h }

// ---------------------------------------------------------------------------
// Type cases
// ---------------------------------------------------------------------------

func TestFuncFirstMatchWins(t *testing.T) {
	describe := match.Func(
		match.Type[any](func(s string) string { return "string " + s }),
		match.Type[any](func(n int) string { return "int " + strconv.Itoa(n) }),
		match.Type[any](func(any) string { return "anything" }),
	)

	for in, want := range map[any]string{
		"go": "string go",
		42:   "int 42",
		3.14: "anything",
		true: "anything",
	} {
		got, err := describe.Apply(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestFuncMatchesInterfaceImplementations(t *testing.T) {
	kind := match.Func(
		match.Type[error](func(*fs.PathError) string { return "path" }),
		match.Type[error](func(error) string { return "other" }),
	)

	_, openErr := os.Open("/does/not/exist")

	got, err := kind.Apply(openErr)
	require.NoError(t, err)
	require.Equal(t, "path", got)

	got, err = kind.Apply(errors.New("boom"))
	require.NoError(t, err)
	require.Equal(t, "other", got)
}

func TestFuncInterfaceTargetType(t *testing.T) {
	area := match.Func(
		match.TypeIf[any](
			func(s shape) bool { return s.area() > 10 },
			func(shape) string { return "big" },
		),
		match.Type[any](func(shape) string { return "small" }),
		match.Default[any](func(any) string { return "not a shape" }),
	)

	require.Equal(t, "big", area.MustApply(rect{w: 4, h: 5}))
	require.Equal(t, "small", area.MustApply(square{side: 2}))
	require.Equal(t, "not a shape", area.MustApply("square"))
}

func TestTypeIfSkipsPredicateOnTypeMismatch(t *testing.T) {
	called := false
	f := match.Func(
		match.TypeIf[any](
			func(string) bool {
				called = true
				return true
			},
			func(s string) string { return s },
		),
		match.Default[any](func(any) string { return "default" }),
	)

	require.Equal(t, "default", f.MustApply(12))
	require.False(t, called)
}

func TestWhenCase(t *testing.T) {
	sign := match.Func(
		match.When(func(n int) bool { return n < 0 }, func(int) string { return "negative" }),
		match.When(func(n int) bool { return n == 0 }, func(int) string { return "zero" }),
		match.Default(func(int) string { return "positive" }),
	)

	require.Equal(t, "negative", sign.MustApply(-3))
	require.Equal(t, "zero", sign.MustApply(0))
	require.Equal(t, "positive", sign.MustApply(7))
}

// ---------------------------------------------------------------------------
// Either projection
// ---------------------------------------------------------------------------

func TestFuncEitherProjection(t *testing.T) {
	f := match.Func(
		match.RightIf[any](
			func(s string) bool { return s == "A" },
			func(s string) string { return "right A" },
		),
		match.Right[any](func(s string) string { return "right " + s }),
		match.Left[any](func(err error) string { return "left " + err.Error() }),
		match.Default[any](func(any) string { return "unknown" }),
	)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"right keyed", combi.Right[error]("A"), "right A"},
		{"right other", combi.Right[error]("B"), "right B"},
		{"left", combi.Left[error, string](errors.New("boom")), "left boom"},
		{"pointer to either", ptr(combi.Right[error]("C")), "right C"},
		{"not an either", "A", "unknown"},
		{"right of another type", combi.Right[error](12), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Apply(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEitherProjectionNilPointerFallsThrough(t *testing.T) {
	f := match.Func(
		match.Right[any](func(s string) string { return "right " + s }),
		match.Left[any](func(err error) string { return "left" }),
		match.Default[any](func(any) string { return "default" }),
	)

	got, err := f.Apply((*combi.Either[error, string])(nil))
	require.NoError(t, err)
	require.Equal(t, "default", got)

	_, err = match.Func(match.Right[any](func(s string) string { return s })).
		Apply((*combi.Either[error, string])(nil))
	require.ErrorIs(t, err, match.ErrNoMatch)
}

func TestEitherProjectionDoesNotCrossSides(t *testing.T) {
	f := match.Func(
		match.Left[any](func(s string) string { return "left " + s }),
	)

	_, err := f.Apply(combi.Right[string]("A"))
	require.ErrorIs(t, err, match.ErrNoMatch)

	got, err := f.Apply(combi.Left[string, string]("A"))
	require.NoError(t, err)
	require.Equal(t, "left A", got)
}

func TestLeftIfPredicate(t *testing.T) {
	f := match.Func(
		match.LeftIf[combi.Either[int, string]](
			func(code int) bool { return code >= 500 },
			func(int) string { return "server" },
		),
		match.Left[combi.Either[int, string]](func(int) string { return "client" }),
		match.Right[combi.Either[int, string]](func(s string) string { return s }),
	)

	require.Equal(t, "server", f.MustApply(combi.Left[int, string](503)))
	require.Equal(t, "client", f.MustApply(combi.Left[int, string](404)))
	require.Equal(t, "ok", f.MustApply(combi.Right[int]("ok")))
}

// ---------------------------------------------------------------------------
// No match
// ---------------------------------------------------------------------------

func TestFuncNoMatch(t *testing.T) {
	f := match.Func(match.Type[any](func(s string) int { return len(s) }))

	got, err := f.Apply(3.5)
	require.Zero(t, got)
	require.ErrorIs(t, err, match.ErrNoMatch)

	var nm *match.NoMatchError
	require.ErrorAs(t, err, &nm)
	require.Equal(t, 3.5, nm.Value)
	require.Equal(t, "failed to find matching case for float64", err.Error())
}

func TestFuncNoMatchKeepsErrorCause(t *testing.T) {
	cause := errors.New("unexpected")
	f := match.Func(match.Type[error](func(*fs.PathError) bool { return true }))

	_, err := f.Apply(cause)
	require.ErrorIs(t, err, match.ErrNoMatch)
	require.ErrorIs(t, err, cause)
}

func TestFuncEmpty(t *testing.T) {
	f := match.Func[int, int]()
	require.Zero(t, f.Len())

	_, err := f.Apply(1)
	require.ErrorIs(t, err, match.ErrNoMatch)
}

func TestMustApplyPanics(t *testing.T) {
	f := match.Func(match.When(func(n int) bool { return n > 0 }, func(n int) int { return n }))

	require.PanicsWithError(t, "failed to find matching case for int", func() {
		f.MustApply(-1)
	})
}

func TestFuncValueAndImmutability(t *testing.T) {
	cases := []match.Case[int, string]{
		match.When(func(n int) bool { return n%2 == 0 }, func(int) string { return "even" }),
		match.Default(func(int) string { return "odd" }),
	}

	f := match.Func(cases...)
	cases[0] = match.Default(func(int) string { return "changed" })

	apply := f.Func()
	got, err := apply(4)
	require.NoError(t, err)
	require.Equal(t, "even", got)
	require.Equal(t, 2, f.Len())
}

func ptr[T any](v T) *T { return &v }
