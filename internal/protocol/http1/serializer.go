package http1

import (
	"slices"
	"sort"

	"github.com/weft-http/weft/codec"
	"github.com/weft-http/weft/http"
	"github.com/weft-http/weft/http/coding"
	"github.com/weft-http/weft/http/header"
	"github.com/weft-http/weft/http/method"
	"github.com/weft-http/weft/http/status"
)

// Serialize renders a response against the request it answers. The response
// itself is left untouched, so it may be serialized against multiple
// requests.
func Serialize(resp *http.Response, req *http.Request) []byte {
	headers := slices.Clone(resp.Headers)
	body := resp.Body.Data

	// Content-Length always describes the uncompressed body.
	if resp.Body.Kind != http.BodyNone && !headers.Has("Content-Length") {
		headers = append(headers, header.ContentLength(len(body)))
	}

	enc := negotiate(resp, req)
	if enc != coding.Unknown {
		headers = append(headers, header.ContentEncoding{enc})
		body = compress(body, enc, resp.Encoding)
	}

	sort.SliceStable(headers, func(i, j int) bool {
		return headers[i].Name() < headers[j].Name()
	})

	out := make([]byte, 0, estimate(req, resp, headers, body))
	out = append(out, req.Version.String()...)
	out = append(out, ' ')
	out = append(out, resp.Status.String()...)
	out = append(out, '\r', '\n')

	for _, h := range headers {
		out = append(out, header.Format(h)...)
	}

	out = append(out, '\r', '\n')

	if omitBody(req, resp) {
		return out
	}

	return append(out, body...)
}

// negotiate returns the coding to apply, or Unknown when the response asked
// for none or the client does not accept the one asked for.
func negotiate(resp *http.Response, req *http.Request) coding.Encoding {
	want := resp.Encoding.Codec
	if want == coding.Unknown || want == coding.Any {
		return coding.Unknown
	}

	h, found := req.Headers.Get("Accept-Encoding")
	if !found {
		return coding.Unknown
	}

	accepted, ok := h.(header.AcceptEncoding)
	if !ok || !accepted.Accepts(want) {
		return coding.Unknown
	}

	return want
}

// compress encodes the body, falling back to the uncompressed bytes when the
// codec fails.
func compress(body []byte, enc coding.Encoding, directive http.EncodingDirective) []byte {
	c := codec.ForEncoding(enc)
	if c == nil {
		return body
	}

	level := codec.Fast
	if directive.HasLevel {
		level = directive.Level
	}

	encoded, err := c.Encode(body, level)
	if err != nil {
		return body
	}

	return encoded
}

// omitBody tells whether the message must end after the header block.
func omitBody(req *http.Request, resp *http.Response) bool {
	return req.Method == method.HEAD || resp.Status.Code == status.NoContent
}

func estimate(req *http.Request, resp *http.Response, headers header.Headers, body []byte) int {
	size := len(req.Version.String()) + 1 + len(resp.Status.String()) + 4

	for _, h := range headers {
		size += len(h.Name()) + len(h.WireValue()) + 4
	}

	return size + len(body)
}
