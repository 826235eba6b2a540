package method

import "strings"

// Method is a request method token. Recognized methods compare equal to the
// package-level variables; an unrecognized token is preserved verbatim.
type Method struct {
	token string
}

var (
	GET     = Method{"GET"}
	HEAD    = Method{"HEAD"}
	POST    = Method{"POST"}
	PUT     = Method{"PUT"}
	DELETE  = Method{"DELETE"}
	CONNECT = Method{"CONNECT"}
	OPTIONS = Method{"OPTIONS"}
	TRACE   = Method{"TRACE"}
	PATCH   = Method{"PATCH"}
)

// List contains all the recognized methods.
var List = []Method{GET, HEAD, POST, PUT, DELETE, CONNECT, OPTIONS, TRACE, PATCH}

// Parse classifies a raw method token case-insensitively. Tokens outside the
// recognized set keep their original casing.
func Parse(raw string) Method {
	str := upper(raw)

	switch len(str) {
	case 3:
		if str == "GET" {
			return GET
		} else if str == "PUT" {
			return PUT
		}
	case 4:
		if str == "POST" {
			return POST
		} else if str == "HEAD" {
			return HEAD
		}
	case 5:
		if str == "PATCH" {
			return PATCH
		} else if str == "TRACE" {
			return TRACE
		}
	case 6:
		if str == "DELETE" {
			return DELETE
		}
	case 7:
		if str == "CONNECT" {
			return CONNECT
		} else if str == "OPTIONS" {
			return OPTIONS
		}
	}

	return Method{token: raw}
}

// Known tells whether the method belongs to the recognized set.
func (m Method) Known() bool {
	switch m {
	case GET, HEAD, POST, PUT, DELETE, CONNECT, OPTIONS, TRACE, PATCH:
		return true
	}

	return false
}

func (m Method) String() string {
	return m.token
}

// upper avoids an allocation for tokens which are already uppercase, which
// is the case for practically all the traffic.
func upper(str string) string {
	for i := 0; i < len(str); i++ {
		if str[i] >= 'a' && str[i] <= 'z' {
			return strings.ToUpper(str)
		}
	}

	return str
}
