// Package codec provides the content coding encoders used to compress
// response bodies.
package codec

import "github.com/weft-http/weft/http/coding"

// Level selects the compression effort.
type Level int

const (
	None Level = 0
	Fast Level = 1
	Best Level = 9
)

// Codec compresses a byte slice in one shot.
type Codec interface {
	// Token is the Content-Encoding token the codec serves.
	Token() string
	Encode(b []byte, level Level) ([]byte, error)
}

// ForEncoding returns the codec serving the coding, or nil when there is
// none to apply.
func ForEncoding(enc coding.Encoding) Codec {
	switch enc {
	case coding.Gzip:
		return gzipCodec{}
	case coding.Deflate:
		return deflateCodec{}
	case coding.Brotli:
		return brotliCodec{}
	default:
		return nil
	}
}
