package combi_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/byte4ever/combi"
)

func TestOptionBasics(t *testing.T) {
	some := combi.Some(3)
	none := combi.None[int]()

	require.True(t, some.IsPresent())
	require.False(t, none.IsPresent())
	require.Equal(t, 3, some.OrElse(9))
	require.Equal(t, 9, none.OrElse(9))
	require.Equal(t, 7, none.OrElseGet(func() int { return 7 }))

	var zero combi.Option[int]
	require.False(t, zero.IsPresent())
}

func TestOptionOf(t *testing.T) {
	v := "x"
	require.Equal(t, combi.Some("x"), combi.OptionOf(&v))
	require.Equal(t, combi.None[string](), combi.OptionOf[string](nil))
}

func TestOptionIfPresent(t *testing.T) {
	var seen []string

	combi.Some("a").IfPresent(func(s string) { seen = append(seen, s) })
	combi.None[string]().IfPresent(func(s string) { seen = append(seen, s) })
	combi.None[string]().IfPresentOrElse(
		func(s string) { seen = append(seen, s) },
		func() { seen = append(seen, "else") },
	)

	require.Equal(t, []string{"a", "else"}, seen)
}

func TestMapAndFlatMapOption(t *testing.T) {
	require.Equal(t, combi.Some("4"), combi.MapOption(combi.Some(4), strconv.Itoa))
	require.Equal(t, combi.None[string](), combi.MapOption(combi.None[int](), strconv.Itoa))

	positive := func(v int) combi.Option[int] {
		if v > 0 {
			return combi.Some(v)
		}
		return combi.None[int]()
	}

	require.Equal(t, combi.Some(1), combi.FlatMapOption(combi.Some(1), positive))
	require.Equal(t, combi.None[int](), combi.FlatMapOption(combi.Some(-1), positive))
}

func TestMap2(t *testing.T) {
	add := func(a, b int) int { return a + b }

	require.Equal(t, combi.Some(5), combi.Map2(combi.Some(2), combi.Some(3), add))
	require.Equal(t, combi.None[int](), combi.Map2(combi.Some(2), combi.None[int](), add))
	require.Equal(t, combi.None[int](), combi.Map2(combi.None[int](), combi.Some(3), add))
}

func TestFlatMap2(t *testing.T) {
	div := func(a, b int) combi.Option[int] {
		if b == 0 {
			return combi.None[int]()
		}
		return combi.Some(a / b)
	}

	require.Equal(t, combi.Some(3), combi.FlatMap2(combi.Some(9), combi.Some(3), div))
	require.Equal(t, combi.None[int](), combi.FlatMap2(combi.Some(9), combi.Some(0), div))
}

func TestOptionThisOrThat(t *testing.T) {
	called := false
	alt := func() combi.Option[int] { called = true; return combi.Some(2) }

	require.Equal(t, combi.Some(1), combi.OptionThisOrThat(combi.Some(1), alt))
	require.False(t, called)
	require.Equal(t, combi.Some(2), combi.OptionThisOrThat(combi.None[int](), alt))
}

func TestOptionsToEither(t *testing.T) {
	absent := func() string { return "absent" }
	pair := func(a int, b string) combi.Either[string, string] {
		return combi.Right[string](strconv.Itoa(a) + b)
	}

	require.Equal(t, combi.Right[string]("1x"), combi.Options2ToEither(combi.Some(1), combi.Some("x"), pair, absent))
	require.Equal(t,
		combi.Left[string, string]("absent"),
		combi.Options2ToEither(combi.Some(1), combi.None[string](), pair, absent),
	)
}

func TestValues(t *testing.T) {
	got := combi.Values(combi.Some(1), combi.None[int](), combi.Some(3))
	require.Equal(t, []int{1, 3}, got)
	require.Empty(t, combi.Values[int]())
}
