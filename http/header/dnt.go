package header

import "github.com/weft-http/weft/internal/strutil"

// DNT is the tracking preference of a request.
type DNT uint8

const (
	// PrefersAllowTrack is the explicit "0" value.
	PrefersAllowTrack DNT = iota
	// PrefersNoTrack is the explicit "1" value.
	PrefersNoTrack
	// NotSpecified is the "null" value.
	NotSpecified
)

// parseDNT resolves a DNT value, matching "null" case-insensitively.
func parseDNT(raw string) (DNT, bool) {
	switch {
	case raw == "0":
		return PrefersAllowTrack, true
	case raw == "1":
		return PrefersNoTrack, true
	case strutil.CmpFold(raw, "null"):
		return NotSpecified, true
	default:
		return 0, false
	}
}

func (h DNT) Name() string { return "DNT" }

func (h DNT) WireValue() string {
	switch h {
	case PrefersAllowTrack:
		return "0"
	case PrefersNoTrack:
		return "1"
	default:
		return "null"
	}
}

func (DNT) sealed() {}
