package codec

import (
	"bytes"

	"github.com/andybalholm/brotli"
)

type brotliCodec struct{}

func (brotliCodec) Token() string {
	return "br"
}

func (brotliCodec) Encode(b []byte, level Level) ([]byte, error) {
	buff := bytes.NewBuffer(make([]byte, 0, len(b)/2))

	w := brotli.NewWriterLevel(buff, int(level))
	if _, err := w.Write(b); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}
