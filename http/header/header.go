// Package header models request and response headers as typed values. Every
// recognized header name parses into its own kind carrying structured data;
// anything else is kept as an opaque Unknown pair.
package header

import (
	"strconv"
	"strings"

	"github.com/weft-http/weft/http/coding"
	"github.com/weft-http/weft/http/cookie"
	"github.com/weft-http/weft/http/mime"
	"github.com/weft-http/weft/internal/strutil"
)

// Header is a single typed header. Name is the canonical wire name and
// WireValue the serialized value, so a header always formats back to
// "Name: WireValue".
type Header interface {
	Name() string
	WireValue() string
	sealed()
}

type (
	Host           string
	UserAgent      string
	Accept         string
	AcceptLanguage string
	AcceptCharset  string
	AcceptDatetime string
	AcceptRanges   string
	Date           string
	Trailer        string
	// TransferEncoding is kept opaque. Chunked bodies are not decoded.
	TransferEncoding string
	Upgrade          string
	Server           string
	Origin           string
	Location         string
)

func (h Host) Name() string           { return "Host" }
func (h UserAgent) Name() string      { return "User-Agent" }
func (h Accept) Name() string         { return "Accept" }
func (h AcceptLanguage) Name() string { return "Accept-Language" }
func (h AcceptCharset) Name() string  { return "Accept-Charset" }
func (h AcceptDatetime) Name() string { return "Accept-Datetime" }
func (h AcceptRanges) Name() string   { return "Accept-Ranges" }
func (h Date) Name() string           { return "Date" }
func (h Trailer) Name() string        { return "Trailer" }

func (h TransferEncoding) Name() string { return "Transfer-Encoding" }
func (h Upgrade) Name() string          { return "Upgrade" }
func (h Server) Name() string           { return "Server" }
func (h Origin) Name() string           { return "Origin" }
func (h Location) Name() string         { return "Location" }

func (h Host) WireValue() string             { return string(h) }
func (h UserAgent) WireValue() string        { return string(h) }
func (h Accept) WireValue() string           { return string(h) }
func (h AcceptLanguage) WireValue() string   { return string(h) }
func (h AcceptCharset) WireValue() string    { return string(h) }
func (h AcceptDatetime) WireValue() string   { return string(h) }
func (h AcceptRanges) WireValue() string     { return string(h) }
func (h Date) WireValue() string             { return string(h) }
func (h Trailer) WireValue() string          { return string(h) }
func (h TransferEncoding) WireValue() string { return string(h) }
func (h Upgrade) WireValue() string          { return string(h) }
func (h Server) WireValue() string           { return string(h) }
func (h Origin) WireValue() string           { return string(h) }
func (h Location) WireValue() string         { return string(h) }

func (Host) sealed()             {}
func (UserAgent) sealed()        {}
func (Accept) sealed()           {}
func (AcceptLanguage) sealed()   {}
func (AcceptCharset) sealed()    {}
func (AcceptDatetime) sealed()   {}
func (AcceptRanges) sealed()     {}
func (Date) sealed()             {}
func (Trailer) sealed()          {}
func (TransferEncoding) sealed() {}
func (Upgrade) sealed()          {}
func (Server) sealed()           {}
func (Origin) sealed()           {}
func (Location) sealed()         {}

// ContentLength is the declared body size in bytes.
type ContentLength uint64

func (h ContentLength) Name() string      { return "Content-Length" }
func (h ContentLength) WireValue() string { return strconv.FormatUint(uint64(h), 10) }
func (ContentLength) sealed()             {}

// ContentType carries a parsed media type.
type ContentType mime.Mime

func (h ContentType) Name() string      { return "Content-Type" }
func (h ContentType) WireValue() string { return mime.Mime(h).String() }
func (ContentType) sealed()             {}

// AcceptEncoding is the parsed coding preference list of a request.
type AcceptEncoding coding.AcceptEncodings

func (h AcceptEncoding) Name() string      { return "Accept-Encoding" }
func (h AcceptEncoding) WireValue() string { return coding.AcceptEncodings(h).String() }
func (AcceptEncoding) sealed()             {}

// Accepts tells whether the coding may be applied to the response.
func (h AcceptEncoding) Accepts(candidate coding.Encoding) bool {
	return coding.AcceptEncodings(h).Accepts(candidate)
}

// ContentEncoding lists the codings applied to the body, in order.
type ContentEncoding []coding.Encoding

func (h ContentEncoding) Name() string { return "Content-Encoding" }

func (h ContentEncoding) WireValue() string {
	parts := make([]string, len(h))
	for i, enc := range h {
		parts[i] = enc.String()
	}

	return strings.Join(parts, ", ")
}

func (ContentEncoding) sealed() {}

// Cookie carries the pairs of a request Cookie header.
type Cookie []cookie.Cookie

func (h Cookie) Name() string { return "Cookie" }

func (h Cookie) WireValue() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.Name + "=" + c.Value
	}

	return strings.Join(parts, "; ")
}

func (Cookie) sealed() {}

// SetCookie carries a single response Set-Cookie header.
type SetCookie cookie.SetCookie

func (h SetCookie) Name() string      { return "Set-Cookie" }
func (h SetCookie) WireValue() string { return cookie.SetCookie(h).String() }
func (SetCookie) sealed()             {}

// Unknown is any header this package has no dedicated kind for. The original
// casing of the name is preserved.
type Unknown struct {
	Key   string
	Value string
}

func (h Unknown) Name() string      { return h.Key }
func (h Unknown) WireValue() string { return h.Value }
func (Unknown) sealed()             {}

// Format renders a header as a complete wire line, terminator included.
func Format(h Header) string {
	return h.Name() + ": " + h.WireValue() + "\r\n"
}

// Headers is an ordered header collection.
type Headers []Header

// Get returns the first header whose name matches case-insensitively.
func (hs Headers) Get(name string) (Header, bool) {
	for _, h := range hs {
		if strutil.CmpFold(h.Name(), name) {
			return h, true
		}
	}

	return nil, false
}

// Has tells whether a header with the name is present.
func (hs Headers) Has(name string) bool {
	_, found := hs.Get(name)
	return found
}
