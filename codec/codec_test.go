package codec

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"github.com/weft-http/weft/http/coding"
)

var sample = []byte(strings.Repeat("Hello, World! ", 128))

func TestForEncoding(t *testing.T) {
	require.Equal(t, "gzip", ForEncoding(coding.Gzip).Token())
	require.Equal(t, "deflate", ForEncoding(coding.Deflate).Token())
	require.Equal(t, "br", ForEncoding(coding.Brotli).Token())
	require.Nil(t, ForEncoding(coding.Any))
	require.Nil(t, ForEncoding(coding.Unknown))
}

func TestGzip(t *testing.T) {
	encoded, err := ForEncoding(coding.Gzip).Encode(sample, Fast)
	require.NoError(t, err)
	require.Less(t, len(encoded), len(sample))

	r, err := gzip.NewReader(bytes.NewReader(encoded))
	require.NoError(t, err)

	decoded, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, sample, decoded)
}

func TestDeflate(t *testing.T) {
	encoded, err := ForEncoding(coding.Deflate).Encode(sample, Best)
	require.NoError(t, err)
	require.Less(t, len(encoded), len(sample))

	decoded, err := io.ReadAll(flate.NewReader(bytes.NewReader(encoded)))
	require.NoError(t, err)
	require.Equal(t, sample, decoded)
}

func TestBrotli(t *testing.T) {
	encoded, err := ForEncoding(coding.Brotli).Encode(sample, Fast)
	require.NoError(t, err)
	require.Less(t, len(encoded), len(sample))

	decoded, err := io.ReadAll(brotli.NewReader(bytes.NewReader(encoded)))
	require.NoError(t, err)
	require.Equal(t, sample, decoded)
}

func TestEmptyInput(t *testing.T) {
	for _, enc := range []coding.Encoding{coding.Gzip, coding.Deflate, coding.Brotli} {
		encoded, err := ForEncoding(enc).Encode(nil, Fast)
		require.NoError(t, err, enc.String())
		require.NotEmpty(t, encoded, enc.String())
	}
}
