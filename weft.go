// Package weft is an HTTP/1.x message codec: a typed header model, a bounded
// single-read request parser and a response serializer with content coding
// negotiation, plus a minimal connection-per-request server on top.
package weft

import (
	"github.com/weft-http/weft/http"
	"github.com/weft-http/weft/server"
)

// Handler produces a response for a request.
type Handler func(request *http.Request) *http.Response

// Serve binds the port on all IPv4 interfaces and answers every connection
// with a single response. It blocks until the listener fails.
func Serve(port uint16, handler Handler) error {
	srv, err := server.Bind(port, server.Options{Log: true})
	if err != nil {
		return err
	}
	defer srv.Close()

	for request := range srv.Requests() {
		_, _ = request.Respond(handler(request))
		_ = request.Close()
	}

	return nil
}
