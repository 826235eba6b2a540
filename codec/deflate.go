package codec

import (
	"bytes"

	"github.com/klauspost/compress/flate"
)

type deflateCodec struct{}

func (deflateCodec) Token() string {
	return "deflate"
}

func (deflateCodec) Encode(b []byte, level Level) ([]byte, error) {
	buff := bytes.NewBuffer(make([]byte, 0, len(b)/2))

	w, err := flate.NewWriter(buff, int(level))
	if err != nil {
		return nil, err
	}

	if _, err = w.Write(b); err != nil {
		return nil, err
	}

	if err = w.Close(); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}
