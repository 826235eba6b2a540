package server

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/weft-http/weft/http"
	"github.com/weft-http/weft/http/method"
)

func dialAndSend(t *testing.T, addr net.Addr, raw string) net.Conn {
	t.Helper()

	conn, err := net.DialTimeout("tcp", addr.String(), time.Second)
	require.NoError(t, err)

	_, err = conn.Write([]byte(raw))
	require.NoError(t, err)

	return conn
}

func TestNext(t *testing.T) {
	srv, err := Bind(0, Options{})
	require.NoError(t, err)
	defer srv.Close()

	conn := dialAndSend(t, srv.Addr(), "GET /ping HTTP/1.1\r\nHost: localhost\r\n\r\n")
	defer conn.Close()

	request, err := srv.Next()
	require.NoError(t, err)
	require.Equal(t, method.GET, request.Method)
	require.Equal(t, "/ping", request.Uri.Path)

	_, err = request.Respond(http.NewResponse().Text("pong"))
	require.NoError(t, err)
	require.NoError(t, request.Close())

	answer, err := io.ReadAll(conn)
	require.NoError(t, err)
	require.Equal(t, "HTTP/1.1 200 OK\r\nContent-Length: 4\r\n\r\npong", string(answer))
}

func TestNextClosesOnParseFailure(t *testing.T) {
	srv, err := Bind(0, Options{})
	require.NoError(t, err)
	defer srv.Close()

	conn := dialAndSend(t, srv.Addr(), "garbage")
	defer conn.Close()

	_, err = srv.Next()
	require.Error(t, err)
}

func TestRequestsStopsOnClose(t *testing.T) {
	srv, err := Bind(0, Options{})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range srv.Requests() {
		}
	}()

	require.NoError(t, srv.Close())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("iterator did not stop after close")
	}
}

func TestPortInUse(t *testing.T) {
	srv, err := Bind(0, Options{})
	require.NoError(t, err)
	defer srv.Close()

	port := uint16(srv.Addr().(*net.TCPAddr).Port)
	_, err = Bind(port, Options{})
	require.ErrorIs(t, err, ErrPortInUse)
}
