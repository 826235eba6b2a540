package http

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/weft-http/weft/codec"
	"github.com/weft-http/weft/http/coding"
	"github.com/weft-http/weft/http/cookie"
	"github.com/weft-http/weft/http/header"
	"github.com/weft-http/weft/http/mime"
	"github.com/weft-http/weft/http/status"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BodyKind tells whether a body is present and how it was given.
type BodyKind uint8

const (
	BodyNone BodyKind = iota
	BodyText
	BodyBinary
)

// Body is the response payload before any coding is applied.
type Body struct {
	Kind BodyKind
	Data []byte
}

// EncodingDirective asks the serializer to compress the body with a coding,
// provided the client accepts it.
type EncodingDirective struct {
	Codec coding.Encoding
	Level codec.Level
	// HasLevel distinguishes an explicit level from the default.
	HasLevel bool
}

// Response is built by chaining and serialized by the protocol package. The
// zero value via NewResponse is 200 OK with no headers and no body.
type Response struct {
	Status   status.Status
	Headers  header.Headers
	Body     Body
	Encoding EncodingDirective
}

func NewResponse() *Response {
	return &Response{Status: status.FromCode(status.OK)}
}

// Code sets the status code along with its standard reason phrase.
func (r *Response) Code(code status.Code) *Response {
	r.Status = status.FromCode(code)
	return r
}

// Reason overrides the reason phrase, keeping the code.
func (r *Response) Reason(reason string) *Response {
	r.Status.Reason = reason
	return r
}

// Header appends a header. Duplicates are allowed.
func (r *Response) Header(h header.Header) *Response {
	r.Headers = append(r.Headers, h)
	return r
}

// Text sets a textual body.
func (r *Response) Text(body string) *Response {
	r.Body = Body{Kind: BodyText, Data: []byte(body)}
	return r
}

// Binary sets a binary body.
func (r *Response) Binary(body []byte) *Response {
	r.Body = Body{Kind: BodyBinary, Data: body}
	return r
}

// ContentType appends a Content-Type header.
func (r *Response) ContentType(m mime.Mime) *Response {
	return r.Header(header.ContentType(m))
}

// Cookie appends a Set-Cookie header.
func (r *Response) Cookie(c cookie.SetCookie) *Response {
	return r.Header(header.SetCookie(c))
}

// Compress asks for the coding at the default level.
func (r *Response) Compress(enc coding.Encoding) *Response {
	r.Encoding = EncodingDirective{Codec: enc}
	return r
}

// CompressLevel asks for the coding at an explicit level.
func (r *Response) CompressLevel(enc coding.Encoding, level codec.Level) *Response {
	r.Encoding = EncodingDirective{Codec: enc, Level: level, HasLevel: true}
	return r
}

// TryJSON marshals the model into the body and sets the media type.
func (r *Response) TryJSON(model any) (*Response, error) {
	data, err := json.Marshal(model)
	if err != nil {
		return r, err
	}

	r.Body = Body{Kind: BodyText, Data: data}

	return r.ContentType(mime.New("application", "json", mime.Param{})), nil
}

// JSON is TryJSON downgrading marshal failures to a plain 500.
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return resp.Code(status.InternalServerError).Text("")
	}

	return resp
}

// Redirect builds a 302 response pointing at the target.
func Redirect(target string) *Response {
	return NewResponse().
		Code(status.MovedTemporarily).
		Header(header.Location(target)).
		ContentType(mime.New("text", "plain", mime.Param{})).
		Text("Redirecting to " + target)
}
