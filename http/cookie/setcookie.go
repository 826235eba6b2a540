package cookie

import (
	"strconv"
	"strings"
	"time"
)

// SetCookie describes a Set-Cookie response header. Zero-valued attributes
// are omitted from the serialized form.
type SetCookie struct {
	Name  string
	Value string
	// MaxAge of zero means the attribute is unset. Negative values are
	// serialized as zero, instructing the client to drop the cookie.
	MaxAge   int
	Expires  time.Time
	Path     string
	Domain   string
	Secure   bool
	HttpOnly bool
}

// String serializes the cookie into the Set-Cookie wire form. The attributes
// follow the pair in a fixed order, separated by semicolons without spaces.
func (c SetCookie) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte('=')
	b.WriteString(c.Value)

	if c.MaxAge != 0 {
		age := max(c.MaxAge, 0)
		b.WriteString(";Max-Age=")
		b.WriteString(strconv.Itoa(age))
	}

	if !c.Expires.IsZero() {
		b.WriteString(";Expires=")
		b.WriteString(c.Expires.In(gmt).Format(time.RFC1123))
	}

	if len(c.Path) > 0 {
		b.WriteString(";Path=")
		b.WriteString(c.Path)
	}

	if len(c.Domain) > 0 {
		b.WriteString(";Domain=")
		b.WriteString(c.Domain)
	}

	if c.Secure {
		b.WriteString(";Secure")
	}

	if c.HttpOnly {
		b.WriteString(";HttpOnly")
	}

	return b.String()
}

var gmt = time.FixedZone("GMT", 0)

// Builder is a chainable SetCookie constructor.
type Builder struct {
	cookie SetCookie
}

// Build starts a Set-Cookie header for the pair. Finish the chain with
// Cookie().
func Build(name, value string) Builder {
	return Builder{cookie: SetCookie{Name: name, Value: value}}
}

func (b Builder) MaxAge(seconds int) Builder {
	b.cookie.MaxAge = seconds
	return b
}

func (b Builder) Expires(at time.Time) Builder {
	b.cookie.Expires = at
	return b
}

func (b Builder) Path(path string) Builder {
	b.cookie.Path = path
	return b
}

func (b Builder) Domain(domain string) Builder {
	b.cookie.Domain = domain
	return b
}

func (b Builder) Secure() Builder {
	b.cookie.Secure = true
	return b
}

func (b Builder) HttpOnly() Builder {
	b.cookie.HttpOnly = true
	return b
}

func (b Builder) Cookie() SetCookie {
	return b.cookie
}
