package header

import (
	"strconv"
	"strings"

	"github.com/weft-http/weft/internal/strutil"
)

// DirectiveKind is a recognized Cache-Control directive. The kinds up to
// OnlyIfCached are bare tokens; the rest carry an integer argument.
type DirectiveKind uint8

const (
	NoCache DirectiveKind = iota
	MustRevalidate
	ProxyRevalidate
	NoStore
	Private
	Public
	MustUnderstand
	NoTransform
	Immutable
	OnlyIfCached
	MaxAge
	StaleWhileRevalidate
	StaleIfError
	MaxStale
	MinFresh
)

var directiveTokens = [...]string{
	NoCache:              "no-cache",
	MustRevalidate:       "must-revalidate",
	ProxyRevalidate:      "proxy-revalidate",
	NoStore:              "no-store",
	Private:              "private",
	Public:               "public",
	MustUnderstand:       "must-understand",
	NoTransform:          "no-transform",
	Immutable:            "immutable",
	OnlyIfCached:         "only-if-cached",
	MaxAge:               "max-age",
	StaleWhileRevalidate: "stale-while-revalidate",
	StaleIfError:         "stale-if-error",
	MaxStale:             "max-stale",
	MinFresh:             "min-fresh",
}

// Directive is a single caching directive. Seconds is meaningful only for
// the integer-valued kinds.
type Directive struct {
	Kind    DirectiveKind
	Seconds uint32
}

// parseDirective resolves a bare or key=value token. Unrecognized tokens and
// bad integer arguments yield ok=false.
func parseDirective(seg string) (Directive, bool) {
	if eq := strings.IndexByte(seg, '='); eq != -1 {
		token, arg := seg[:eq], seg[eq+1:]

		for kind := MaxAge; kind <= MinFresh; kind++ {
			if strutil.CmpFold(token, directiveTokens[kind]) {
				seconds, err := strconv.ParseUint(arg, 10, 32)
				if err != nil {
					return Directive{}, false
				}

				return Directive{Kind: kind, Seconds: uint32(seconds)}, true
			}
		}

		return Directive{}, false
	}

	for kind := NoCache; kind <= OnlyIfCached; kind++ {
		if strutil.CmpFold(seg, directiveTokens[kind]) {
			return Directive{Kind: kind}, true
		}
	}

	return Directive{}, false
}

func (d Directive) String() string {
	token := directiveTokens[d.Kind]
	if d.Kind < MaxAge {
		return token
	}

	return token + "=" + strconv.FormatUint(uint64(d.Seconds), 10)
}

// CacheControl is the directive list of a Cache-Control header.
type CacheControl []Directive

// ParseDirectives parses a comma-separated directive list. Directives that
// are not recognized are silently dropped.
func ParseDirectives(raw string) CacheControl {
	var list CacheControl

	for _, seg := range strings.Split(raw, ",") {
		if d, ok := parseDirective(strutil.StripWS(seg)); ok {
			list = append(list, d)
		}
	}

	return list
}

func (h CacheControl) Name() string { return "Cache-Control" }

func (h CacheControl) WireValue() string {
	parts := make([]string, len(h))
	for i, d := range h {
		parts[i] = d.String()
	}

	return strings.Join(parts, ", ")
}

func (CacheControl) sealed() {}

// Pragma carries a single directive. Unlike Cache-Control, an unrecognized
// value is a parse error.
type Pragma Directive

func (h Pragma) Name() string      { return "Pragma" }
func (h Pragma) WireValue() string { return Directive(h).String() }
func (Pragma) sealed()             {}
