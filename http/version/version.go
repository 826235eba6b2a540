package version

// Version is an HTTP version token from the request line. Recognized versions
// compare equal to the package-level variables; an unrecognized token is
// preserved verbatim.
type Version struct {
	token string
}

var (
	HTTP10 = Version{"HTTP/1.0"}
	HTTP11 = Version{"HTTP/1.1"}
	HTTP20 = Version{"HTTP/2.0"}
)

// Parse classifies a raw version token.
func Parse(str string) Version {
	switch str {
	case "HTTP/1.0":
		return HTTP10
	case "HTTP/1.1":
		return HTTP11
	case "HTTP/2.0":
		return HTTP20
	}

	return Version{token: str}
}

// Known tells whether the version belongs to the recognized set.
func (v Version) Known() bool {
	switch v {
	case HTTP10, HTTP11, HTTP20:
		return true
	}

	return false
}

func (v Version) String() string {
	return v.token
}
