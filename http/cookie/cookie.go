package cookie

import (
	"errors"
	"strings"

	"github.com/weft-http/weft/internal/strutil"
	"github.com/weft-http/weft/internal/urlenc"
)

var (
	ErrBadPair   = errors.New("malformed cookie pair")
	ErrEmptyName = errors.New("cookie name is empty")
	ErrBadValue  = errors.New("cookie value is not urlencoded properly")
)

// Cookie is a single name-value pair of a Cookie request header.
type Cookie struct {
	Name  string
	Value string
}

func New(name, value string) Cookie {
	return Cookie{Name: name, Value: value}
}

// ParseRequest parses a Cookie request header value into its pairs. The
// pairs are separated by "; ", each must split into a non-empty name and an
// urldecodable value on a single equals sign; any malformed pair fails the
// whole parse.
func ParseRequest(raw string) ([]Cookie, error) {
	pairs := strings.Split(raw, "; ")
	out := make([]Cookie, 0, len(pairs))

	for _, pair := range pairs {
		eq := strings.IndexByte(pair, '=')
		if eq == -1 || strings.IndexByte(pair[eq+1:], '=') != -1 {
			return nil, ErrBadPair
		}

		name := pair[:eq]
		if len(name) == 0 {
			return nil, ErrEmptyName
		}

		value, err := urlenc.Decode(pair[eq+1:])
		if err != nil {
			return nil, ErrBadValue
		}

		out = append(out, Cookie{Name: name, Value: value})
	}

	return out, nil
}

// Lookup returns the first cookie matching the name case-insensitively.
func Lookup(cookies []Cookie, name string) (Cookie, bool) {
	for _, c := range cookies {
		if strutil.CmpFold(c.Name, name) {
			return c, true
		}
	}

	return Cookie{}, false
}
