package http

import (
	"strings"

	"github.com/weft-http/weft/http/query"
	"github.com/weft-http/weft/http/status"
	"github.com/weft-http/weft/internal/urlenc"
)

// Uri is a parsed request target. Origin-form targets borrow their host from
// the Host header and always carry the http scheme.
type Uri struct {
	Scheme string
	Host   string
	Path   string
	Query  query.Params
}

// OriginForm parses an origin-form target ("/path?query") against the host
// the request was addressed to.
func OriginForm(host, target string) (Uri, error) {
	path, params, err := splitTarget(target)
	if err != nil {
		return Uri{}, err
	}

	return Uri{Scheme: "http", Host: host, Path: path, Query: params}, nil
}

// AbsoluteForm parses an absolute-form target ("http://host/path?query").
func AbsoluteForm(target string) (Uri, error) {
	sep := strings.Index(target, "://")
	if sep == -1 {
		return Uri{}, status.ErrBadTarget
	}

	scheme, rest := target[:sep], target[sep+3:]
	if len(scheme) == 0 || len(rest) == 0 {
		return Uri{}, status.ErrBadTarget
	}

	host, rest := rest, ""
	if slash := strings.IndexByte(host, '/'); slash != -1 {
		host, rest = host[:slash], host[slash:]
	}

	if len(host) == 0 {
		return Uri{}, status.ErrBadTarget
	}

	path, params, err := splitTarget(rest)
	if err != nil {
		return Uri{}, err
	}

	return Uri{Scheme: scheme, Host: host, Path: path, Query: params}, nil
}

// splitTarget separates the path from the query string and decodes both. An
// empty path normalizes to the root.
func splitTarget(target string) (string, query.Params, error) {
	var rawQuery string
	if q := strings.IndexByte(target, '?'); q != -1 {
		target, rawQuery = target[:q], target[q+1:]
	}

	path, err := urlenc.Decode(target)
	if err != nil {
		return "", query.Params{}, status.ErrURLDecoding
	}

	if len(path) == 0 {
		path = "/"
	}

	params, err := query.Parse(rawQuery)
	if err != nil {
		return "", query.Params{}, err
	}

	return path, params, nil
}

func (u Uri) String() string {
	var b strings.Builder
	b.WriteString(u.Scheme)
	b.WriteString("://")
	b.WriteString(u.Host)
	b.WriteString(u.Path)
	b.WriteString(u.Query.Format())

	return b.String()
}
