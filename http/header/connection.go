package header

import "github.com/weft-http/weft/internal/strutil"

// Connection keeps the value verbatim. The well-known tokens are matched
// case-insensitively on parse and normalized to their canonical casing;
// anything else stays as sent.
type Connection string

const (
	ConnKeepAlive Connection = "keep-alive"
	ConnClose     Connection = "close"
	ConnUpgrade   Connection = "upgrade"
)

// ParseConnection normalizes the well-known connection tokens.
func ParseConnection(raw string) Connection {
	switch {
	case strutil.CmpFold(raw, "keep-alive"):
		return ConnKeepAlive
	case strutil.CmpFold(raw, "close"):
		return ConnClose
	case strutil.CmpFold(raw, "upgrade"):
		return ConnUpgrade
	default:
		return Connection(raw)
	}
}

func (h Connection) Name() string      { return "Connection" }
func (h Connection) WireValue() string { return string(h) }
func (Connection) sealed()             {}

// ProxyConnection mirrors Connection for the legacy Proxy-Connection name.
type ProxyConnection Connection

func (h ProxyConnection) Name() string      { return "Proxy-Connection" }
func (h ProxyConnection) WireValue() string { return string(h) }
func (ProxyConnection) sealed()             {}
