package http1

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weft-http/weft/config"
	"github.com/weft-http/weft/http/header"
	"github.com/weft-http/weft/http/method"
	"github.com/weft-http/weft/http/status"
	"github.com/weft-http/weft/http/version"
	"github.com/weft-http/weft/transport/dummy"
)

func parse(t *testing.T, raw string) (*Parser, *dummy.Client) {
	t.Helper()
	return NewParser(config.Default()), dummy.NewClient([]byte(raw))
}

func TestParse(t *testing.T) {
	t.Run("simple get", func(t *testing.T) {
		parser, client := parse(t, "GET /search?a=1&a=2 HTTP/1.1\r\nHost: example.com\r\n\r\n")
		request, err := parser.Parse(client)
		require.NoError(t, err)

		require.Equal(t, method.GET, request.Method)
		require.Equal(t, version.HTTP11, request.Version)
		require.Equal(t, "example.com", request.Uri.Host)
		require.Equal(t, "/search", request.Uri.Path)

		values, found := request.Uri.Query.Get("a")
		require.True(t, found)
		require.Equal(t, []string{"1", "2"}, values)
		require.Empty(t, request.Body)
	})

	t.Run("no headers", func(t *testing.T) {
		parser, client := parse(t, "GET / HTTP/1.1\r\n\r\n")
		request, err := parser.Parse(client)
		require.NoError(t, err)
		require.Empty(t, request.Headers)
		require.Equal(t, "/", request.Uri.Path)
		require.Empty(t, request.Uri.Host)
	})

	t.Run("body is everything after the head", func(t *testing.T) {
		parser, client := parse(t, "POST /submit HTTP/1.1\r\nHost: x\r\n\r\nname=value\r\ntrailing")
		request, err := parser.Parse(client)
		require.NoError(t, err)
		require.Equal(t, method.POST, request.Method)
		require.Equal(t, "name=value\r\ntrailing", request.Body)
	})

	t.Run("absolute form", func(t *testing.T) {
		parser, client := parse(t, "GET http://example.com/a/b?x=1 HTTP/1.1\r\n\r\n")
		request, err := parser.Parse(client)
		require.NoError(t, err)
		require.Equal(t, "http", request.Uri.Scheme)
		require.Equal(t, "example.com", request.Uri.Host)
		require.Equal(t, "/a/b", request.Uri.Path)
		require.Equal(t, "1", request.Uri.Query.Value("x"))
	})

	t.Run("asterisk form", func(t *testing.T) {
		parser, client := parse(t, "OPTIONS * HTTP/1.1\r\nHost: example.com\r\n\r\n")
		request, err := parser.Parse(client)
		require.NoError(t, err)
		require.Equal(t, method.OPTIONS, request.Method)
		require.Equal(t, "*", request.Uri.Path)
		require.Equal(t, "example.com", request.Uri.Host)
	})

	t.Run("authority form", func(t *testing.T) {
		parser, client := parse(t, "CONNECT example.com:443 HTTP/1.1\r\nHost: example.com:443\r\n\r\n")
		request, err := parser.Parse(client)
		require.NoError(t, err)
		require.Equal(t, method.CONNECT, request.Method)
		require.Equal(t, "example.com:443", request.Uri.Path)
	})

	t.Run("typed headers come back typed", func(t *testing.T) {
		parser, client := parse(t, "GET / HTTP/1.1\r\nHost: x\r\nContent-Length: 5\r\nX-Custom: y\r\n\r\n")
		request, err := parser.Parse(client)
		require.NoError(t, err)

		h, found := request.Header("content-length")
		require.True(t, found)
		require.Equal(t, header.ContentLength(5), h)

		h, found = request.Header("x-custom")
		require.True(t, found)
		require.Equal(t, header.Unknown{"X-Custom", "y"}, h)
	})

	t.Run("empty connection", func(t *testing.T) {
		parser, client := parse(t, "")
		_, err := parser.Parse(client)
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("truncated request line", func(t *testing.T) {
		parser, client := parse(t, "GET /")
		_, err := parser.Parse(client)
		require.ErrorIs(t, err, status.ErrBadRequestLine)
	})

	t.Run("bare lf after cr is required", func(t *testing.T) {
		parser, client := parse(t, "GET / HTTP/1.1\rX\r\n\r\n")
		_, err := parser.Parse(client)
		require.ErrorIs(t, err, status.ErrBadRequestLine)
	})

	t.Run("header line without separator", func(t *testing.T) {
		parser, client := parse(t, "GET / HTTP/1.1\r\nHost example.com\r\n\r\n")
		_, err := parser.Parse(client)
		require.ErrorIs(t, err, status.ErrBadHeaderLine)
	})

	t.Run("bad header value propagates", func(t *testing.T) {
		parser, client := parse(t, "GET / HTTP/1.1\r\nContent-Length: five\r\n\r\n")
		_, err := parser.Parse(client)
		require.ErrorIs(t, err, header.ErrBadContentLength)
	})

	t.Run("bad query fails the parse", func(t *testing.T) {
		parser, client := parse(t, "GET /search?broken HTTP/1.1\r\nHost: x\r\n\r\n")
		_, err := parser.Parse(client)
		require.ErrorIs(t, err, status.ErrBadQueryString)
	})

	t.Run("parser reuse keeps earlier requests intact", func(t *testing.T) {
		parser := NewParser(config.Default())

		first, err := parser.Parse(dummy.NewClient([]byte("GET /first HTTP/1.1\r\nHost: a\r\n\r\n")))
		require.NoError(t, err)

		second, err := parser.Parse(dummy.NewClient([]byte("GET /second HTTP/1.1\r\nHost: b\r\n\r\n")))
		require.NoError(t, err)

		require.Equal(t, "/first", first.Uri.Path)
		require.Equal(t, "a", first.Uri.Host)
		require.Equal(t, "/second", second.Uri.Path)
	})
}
