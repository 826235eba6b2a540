package strutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCmpFold(t *testing.T) {
	require.True(t, CmpFold("HELLO", "hello"))
	require.True(t, CmpFold("Content-Length", "content-length"))
	require.True(t, CmpFold("\r\n\r\n", "\r\n\r\n"))
	require.False(t, CmpFold("\v\t", "\r\t"))
	require.False(t, CmpFold("hello", "hello "))
}

func TestStripWS(t *testing.T) {
	require.Equal(t, "gzip", LStripWS("  gzip"))
	require.Equal(t, "gzip", RStripWS("gzip\t "))
	require.Equal(t, "br", StripWS(" br "))
	require.Equal(t, "", StripWS(" \t "))
}
