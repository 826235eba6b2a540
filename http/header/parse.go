package header

import (
	"errors"
	"strconv"
	"strings"

	"github.com/weft-http/weft/http/coding"
	"github.com/weft-http/weft/http/cookie"
	"github.com/weft-http/weft/http/mime"
)

var (
	ErrBadContentLength = errors.New("content-length is not a valid integer")
	ErrBadPragma        = errors.New("unrecognized pragma directive")
	ErrBadDNT           = errors.New("dnt must be 0, 1 or null")
)

// Parse turns a raw key-value pair into its typed kind. The key is matched
// case-insensitively; keys without a dedicated kind come back as Unknown
// with their original casing kept.
func Parse(key, value string) (Header, error) {
	switch strings.ToLower(key) {
	case "host":
		return Host(value), nil
	case "user-agent":
		return UserAgent(value), nil
	case "accept":
		return Accept(value), nil
	case "accept-language":
		return AcceptLanguage(value), nil
	case "accept-charset":
		return AcceptCharset(value), nil
	case "accept-datetime":
		return AcceptDatetime(value), nil
	case "accept-ranges":
		return AcceptRanges(value), nil
	case "accept-encoding":
		list, err := coding.ParseAcceptEncodings(value)
		if err != nil {
			return nil, err
		}

		return AcceptEncoding(list), nil
	case "connection":
		return ParseConnection(value), nil
	case "proxy-connection":
		return ProxyConnection(ParseConnection(value)), nil
	case "content-length":
		length, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, ErrBadContentLength
		}

		return ContentLength(length), nil
	case "content-type":
		m, err := mime.Parse(value)
		if err != nil {
			return nil, err
		}

		return ContentType(m), nil
	case "cache-control":
		return ParseDirectives(value), nil
	case "pragma":
		d, ok := parseDirective(value)
		if !ok {
			return nil, ErrBadPragma
		}

		return Pragma(d), nil
	case "cookie":
		cookies, err := cookie.ParseRequest(value)
		if err != nil {
			return nil, err
		}

		return Cookie(cookies), nil
	case "dnt":
		d, ok := parseDNT(value)
		if !ok {
			return nil, ErrBadDNT
		}

		return d, nil
	case "date":
		return Date(value), nil
	case "trailer":
		return Trailer(value), nil
	case "transfer-encoding":
		return TransferEncoding(value), nil
	case "upgrade":
		return Upgrade(value), nil
	case "server":
		return Server(value), nil
	case "origin":
		return Origin(value), nil
	case "location":
		return Location(value), nil
	default:
		return Unknown{Key: key, Value: value}, nil
	}
}
