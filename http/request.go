// Package http holds the request and response model of the codec.
package http

import (
	"errors"

	"github.com/weft-http/weft/http/cookie"
	"github.com/weft-http/weft/http/header"
	"github.com/weft-http/weft/http/method"
	"github.com/weft-http/weft/http/version"
	"github.com/weft-http/weft/transport"
)

var ErrDoubleRespond = errors.New("the request was already responded to")

// SerializeFunc renders a response against the request it answers.
type SerializeFunc func(resp *Response, req *Request) []byte

// Request is a single parsed request bound to the client it arrived from.
type Request struct {
	Method  method.Method
	Version version.Version
	Uri     Uri
	Headers header.Headers
	// Body is everything following the header block, verbatim.
	Body string
	// Raw is the bytes of the whole message as read from the wire.
	Raw []byte

	client    transport.Client
	serialize SerializeFunc
	responded bool
}

// NewRequest binds an empty request to its client. The parser fills the
// rest in.
func NewRequest(client transport.Client, serialize SerializeFunc) *Request {
	return &Request{client: client, serialize: serialize}
}

// Respond serializes the response and writes it back to the client. A
// request may be responded to at most once.
func (r *Request) Respond(resp *Response) (int, error) {
	if r.responded {
		return 0, ErrDoubleRespond
	}

	n, err := r.client.Write(r.serialize(resp, r))
	if err != nil {
		return n, err
	}

	r.responded = true

	return n, nil
}

// Header returns the first header with the name, matched case-insensitively.
func (r *Request) Header(name string) (header.Header, bool) {
	return r.Headers.Get(name)
}

// Cookie looks a cookie up by name across all Cookie headers.
func (r *Request) Cookie(name string) (cookie.Cookie, bool) {
	for _, h := range r.Headers {
		if jar, ok := h.(header.Cookie); ok {
			if c, found := cookie.Lookup(jar, name); found {
				return c, true
			}
		}
	}

	return cookie.Cookie{}, false
}

// Remote returns the peer address.
func (r *Request) Remote() string {
	return r.client.Remote().String()
}

// Close closes the underlying connection.
func (r *Request) Close() error {
	return r.client.Close()
}
