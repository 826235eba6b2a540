package coding

import (
	"errors"
	"strconv"
	"strings"

	"github.com/weft-http/weft/internal/strutil"
)

var ErrUnknownEncoding = errors.New("unknown content encoding")

// Encoding is a content coding token.
type Encoding uint8

const (
	Unknown Encoding = iota
	Gzip
	Deflate
	Brotli
	// Any is the wildcard of an Accept-Encoding list.
	Any
)

var tokens = [...]string{
	Gzip:    "gzip",
	Deflate: "deflate",
	Brotli:  "br",
	Any:     "*",
}

// ParseEncoding resolves a coding token. Unrecognized tokens yield Unknown.
func ParseEncoding(token string) Encoding {
	switch token {
	case "gzip":
		return Gzip
	case "deflate":
		return Deflate
	case "br":
		return Brotli
	case "*":
		return Any
	default:
		return Unknown
	}
}

func (e Encoding) String() string {
	if e == Unknown {
		return "unknown"
	}

	return tokens[e]
}

// AcceptEncoding is a single member of an Accept-Encoding list: a coding,
// possibly weighted with a q-value.
type AcceptEncoding struct {
	Encoding Encoding
	Quality  int8
	// HasQuality distinguishes an explicit q=0 from no q-value at all.
	HasQuality bool
}

func (a AcceptEncoding) String() string {
	if !a.HasQuality {
		return a.Encoding.String()
	}

	return a.Encoding.String() + ";q=" + strconv.Itoa(int(a.Quality))
}

// AcceptEncodings is a parsed Accept-Encoding header value in its original
// order.
type AcceptEncodings []AcceptEncoding

// ParseAcceptEncodings parses a comma-separated coding list. Empty segments
// are skipped, unrecognized coding tokens fail the parse, and a q-value that
// does not parse as an integer is treated as absent.
func ParseAcceptEncodings(raw string) (AcceptEncodings, error) {
	var list AcceptEncodings

	for len(raw) > 0 {
		var seg string
		if comma := strings.IndexByte(raw, ','); comma != -1 {
			seg, raw = raw[:comma], raw[comma+1:]
		} else {
			seg, raw = raw, ""
		}

		seg = strutil.StripWS(seg)
		if len(seg) == 0 {
			continue
		}

		var entry AcceptEncoding
		if semi := strings.IndexByte(seg, ';'); semi != -1 {
			if q, ok := parseQuality(seg[semi+1:]); ok {
				entry.Quality = q
				entry.HasQuality = true
			}

			seg = strutil.RStripWS(seg[:semi])
		}

		entry.Encoding = ParseEncoding(seg)
		if entry.Encoding == Unknown {
			return nil, ErrUnknownEncoding
		}

		list = append(list, entry)
	}

	return list, nil
}

func parseQuality(seg string) (int8, bool) {
	seg = strutil.StripWS(seg)
	if !strings.HasPrefix(seg, "q=") {
		return 0, false
	}

	q, err := strconv.ParseInt(seg[2:], 10, 8)
	if err != nil {
		return 0, false
	}

	return int8(q), true
}

// Accepts tells whether the candidate coding may be applied to a response.
// The list is consulted in order and a wildcard member matches any candidate.
// Weights play no role in the decision.
func (list AcceptEncodings) Accepts(candidate Encoding) bool {
	for _, entry := range list {
		if entry.Encoding == candidate || entry.Encoding == Any {
			return true
		}
	}

	return false
}

func (list AcceptEncodings) String() string {
	parts := make([]string, len(list))
	for i, entry := range list {
		parts[i] = entry.String()
	}

	return strings.Join(parts, ", ")
}
