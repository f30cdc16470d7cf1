package bancho

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

// GzipCompress wraps data in an RFC-1952 gzip stream, used for the legacy
// always-compressed envelope (builds before b323) and the modern envelope's
// optional compression flag.
func GzipCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("%w: gzip compress: %v", ErrMalformedPayload, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: gzip compress: %v", ErrMalformedPayload, err)
	}
	return buf.Bytes(), nil
}

// GzipDecompress unwraps an RFC-1952 gzip stream.
func GzipDecompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: gzip decompress: %v", ErrMalformedPayload, err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: gzip decompress: %v", ErrMalformedPayload, err)
	}
	return out, nil
}
