package mime

import (
	"errors"
	"strings"
)

var ErrMalformed = errors.New("malformed media type")

// Type is the registry class of a media type. Unrecognized classes are
// represented by Custom with the raw token kept on the Mime itself.
type Type uint8

const (
	Custom Type = iota
	Text
	Application
	Audio
	Image
	Message
	Model
	Video
)

var typeTokens = [...]string{
	Text:        "text",
	Application: "application",
	Audio:       "audio",
	Image:       "image",
	Message:     "message",
	Model:       "model",
	Video:       "video",
}

// Param is a single media type parameter, e.g. charset=utf-8.
type Param struct {
	Key, Value string
}

// Mime is a parsed media type. At most one parameter is recognized; any
// further ;-segments are discarded.
type Mime struct {
	Type Type
	// CustomType holds the raw class token when Type is Custom.
	CustomType string
	Subtype    string
	// Param is the zero value when no parameter was present.
	Param Param
}

// New classifies the type token case-sensitively, falling back to Custom.
func New(kind, subtype string, param Param) Mime {
	for t := Text; t <= Video; t++ {
		if typeTokens[t] == kind {
			return Mime{Type: t, Subtype: subtype, Param: param}
		}
	}

	return Mime{Type: Custom, CustomType: kind, Subtype: subtype, Param: param}
}

// Parse decodes a "type/subtype[;key=value]" string.
func Parse(raw string) (Mime, error) {
	slash := strings.IndexByte(raw, '/')
	if slash == -1 {
		return Mime{}, ErrMalformed
	}

	kind, rest := raw[:slash], raw[slash+1:]

	var param Param
	if semi := strings.IndexByte(rest, ';'); semi != -1 {
		seg := rest[semi+1:]
		rest = rest[:semi]

		// only the first parameter segment is recognized
		if next := strings.IndexByte(seg, ';'); next != -1 {
			seg = seg[:next]
		}

		eq := strings.IndexByte(seg, '=')
		if eq == -1 {
			return Mime{}, ErrMalformed
		}

		param = Param{Key: seg[:eq], Value: seg[eq+1:]}
	}

	return New(kind, rest, param), nil
}

// TypeToken returns the textual class token.
func (m Mime) TypeToken() string {
	if m.Type == Custom {
		return m.CustomType
	}

	return typeTokens[m.Type]
}

// HasParam tells whether a parameter was present.
func (m Mime) HasParam() bool {
	return m.Param != Param{}
}

func (m Mime) String() string {
	var b strings.Builder
	b.Grow(len(m.TypeToken()) + len(m.Subtype) + 1)
	b.WriteString(m.TypeToken())
	b.WriteByte('/')
	b.WriteString(m.Subtype)

	if m.HasParam() {
		b.WriteByte(';')
		b.WriteString(m.Param.Key)
		b.WriteByte('=')
		b.WriteString(m.Param.Value)
	}

	return b.String()
}

var extensions = map[string]string{
	"txt":  "text/plain",
	"html": "text/html",
	"js":   "application/javascript",
	"mp3":  "audio/mp3",
	"mp4":  "video/mp4",
}

// FromExtension resolves a file extension, with or without the leading dot,
// into a media type. Unknown extensions resolve to def.
func FromExtension(ext string, def Mime) Mime {
	for strings.HasPrefix(ext, ".") {
		ext = ext[1:]
	}

	raw, ok := extensions[ext]
	if !ok {
		return def
	}

	m, err := Parse(raw)
	if err != nil {
		return def
	}

	return m
}
