package urlenc

import (
	"errors"
	"strings"
)

var ErrBadEscape = errors.New("invalid urlencoded sequence")

// Halfbyte maps a hex digit to its value. Invalid characters map to 0xFF.
var Halfbyte = func() (lut [256]byte) {
	for i := range lut {
		lut[i] = 0xFF
	}

	for c := byte('0'); c <= '9'; c++ {
		lut[c] = c - '0'
	}

	for c := byte('a'); c <= 'f'; c++ {
		lut[c] = c - 'a' + 10
	}

	for c := byte('A'); c <= 'F'; c++ {
		lut[c] = c - 'A' + 10
	}

	return lut
}()

// Decode resolves %XX escapes in str. Incomplete or non-hex sequences fail
// the whole decode.
func Decode(str string) (string, error) {
	percent := strings.IndexByte(str, '%')
	if percent == -1 {
		return str, nil
	}

	var b strings.Builder
	b.Grow(len(str))

	for {
		b.WriteString(str[:percent])
		str = str[percent+1:]

		if len(str) < 2 {
			return "", ErrBadEscape
		}

		x, y := Halfbyte[str[0]], Halfbyte[str[1]]
		if x == 0xFF || y == 0xFF {
			return "", ErrBadEscape
		}

		b.WriteByte(x<<4 | y)
		str = str[2:]

		percent = strings.IndexByte(str, '%')
		if percent == -1 {
			b.WriteString(str)
			return b.String(), nil
		}
	}
}

const hexdigits = "0123456789ABCDEF"

// Encode escapes every character except unreserved ones as %XX.
func Encode(str string) string {
	for i := 0; i < len(str); i++ {
		if !isUnreserved(str[i]) {
			return encodeSlow(str, i)
		}
	}

	return str
}

func encodeSlow(str string, offset int) string {
	var b strings.Builder
	b.Grow(len(str) + 2)
	b.WriteString(str[:offset])

	for i := offset; i < len(str); i++ {
		c := str[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}

		b.WriteByte('%')
		b.WriteByte(hexdigits[c>>4])
		b.WriteByte(hexdigits[c&0xF])
	}

	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}

	return false
}
