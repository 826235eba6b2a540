package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weft-http/weft/http/status"
)

func TestParse(t *testing.T) {
	t.Run("single pair", func(t *testing.T) {
		params, err := Parse("?hello=world")
		require.NoError(t, err)
		require.Equal(t, []string{"hello"}, params.Keys())
		require.Equal(t, "world", params.Value("hello"))
	})

	t.Run("no question mark", func(t *testing.T) {
		params, err := Parse("a=b")
		require.NoError(t, err)
		require.Equal(t, "b", params.Value("a"))
	})

	t.Run("repeated keys merge", func(t *testing.T) {
		params, err := Parse("a=1&b=2&a=3")
		require.NoError(t, err)
		require.Equal(t, 2, params.Len())
		require.Equal(t, []string{"a", "b"}, params.Keys())

		values, found := params.Get("a")
		require.True(t, found)
		require.Equal(t, []string{"1", "3"}, values)
	})

	t.Run("urlencoded", func(t *testing.T) {
		params, err := Parse("q=hello%20world&lang=%D0%B0")
		require.NoError(t, err)
		require.Equal(t, "hello world", params.Value("q"))
		require.Equal(t, "а", params.Value("lang"))
	})

	t.Run("plus is a space", func(t *testing.T) {
		params, err := Parse("q=hello+world&a+b=c")
		require.NoError(t, err)
		require.Equal(t, "hello world", params.Value("q"))
		require.Equal(t, "c", params.Value("a b"))
	})

	t.Run("escaped plus stays a plus", func(t *testing.T) {
		params, err := Parse("q=a%2Bb")
		require.NoError(t, err)
		require.Equal(t, "a+b", params.Value("q"))
	})

	t.Run("empty string", func(t *testing.T) {
		params, err := Parse("")
		require.NoError(t, err)
		require.True(t, params.Empty())
	})

	t.Run("segment without equals", func(t *testing.T) {
		_, err := Parse("a=1&broken")
		require.ErrorIs(t, err, status.ErrBadQueryString)
	})

	t.Run("segment with two equals", func(t *testing.T) {
		_, err := Parse("a=1=2")
		require.ErrorIs(t, err, status.ErrBadQueryString)
	})

	t.Run("bad escape", func(t *testing.T) {
		_, err := Parse("a=%zz")
		require.ErrorIs(t, err, status.ErrURLDecoding)
	})
}

func TestFormat(t *testing.T) {
	t.Run("empty formats to nothing", func(t *testing.T) {
		var params Params
		require.Equal(t, "", params.Format())
	})

	t.Run("encodes and joins", func(t *testing.T) {
		var params Params
		params.Add("q", "hello world")
		params.Add("a", "1")
		params.Add("a", "2")
		require.Equal(t, "?q=hello%20world&a=1&a=2", params.Format())
	})
}

func TestRoundTrip(t *testing.T) {
	for _, sample := range []string{
		"?a=1&a=2&b=hello%20world",
		"?key=value",
		"?x=a%2Bb&y=%D0%B0",
	} {
		first, err := Parse(sample)
		require.NoError(t, err)

		second, err := Parse(first.Format())
		require.NoError(t, err)

		require.Equal(t, first.Keys(), second.Keys())
		for _, key := range first.Keys() {
			want, _ := first.Get(key)
			got, _ := second.Get(key)
			require.Equal(t, want, got, key)
		}
	}
}

func TestRemove(t *testing.T) {
	var params Params
	params.Add("a", "1")
	params.Add("b", "2")
	params.Remove("a")
	require.False(t, params.Has("a"))
	require.Equal(t, []string{"b"}, params.Keys())
}

func TestEntries(t *testing.T) {
	params, err := Parse("a=1&b=2&a=3")
	require.NoError(t, err)

	var keys []string
	for key, values := range params.Entries() {
		keys = append(keys, key)
		require.NotEmpty(t, values)
	}

	require.Equal(t, []string{"a", "b"}, keys)
}
