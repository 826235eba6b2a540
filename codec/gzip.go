package codec

import (
	"bytes"

	"github.com/klauspost/compress/gzip"
)

type gzipCodec struct{}

func (gzipCodec) Token() string {
	return "gzip"
}

func (gzipCodec) Encode(b []byte, level Level) ([]byte, error) {
	buff := bytes.NewBuffer(make([]byte, 0, len(b)/2))

	w, err := gzip.NewWriterLevel(buff, int(level))
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
