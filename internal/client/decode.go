package client

import (
	"bufio"
	"compress/gzip"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
)

// decodeBody wraps body in a decompressor for the given Content-Encoding.
// The transport only decompresses gzip transparently when it set
// Accept-Encoding itself; the browser header profile sets it explicitly.
func decodeBody(encoding string, body io.Reader) (io.ReadCloser, error) {
	buf := bufio.NewReader(body)
	// An empty body has no compressed stream to open, whatever the header says.
	if _, err := buf.Peek(1); errors.Is(err, io.EOF) {
		return io.NopCloser(buf), nil
	}

	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "identity":
		return io.NopCloser(buf), nil
	case "gzip", "x-gzip":
		zr, err := gzip.NewReader(buf)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return zr, nil
	case "deflate":
		zr, err := zlib.NewReader(buf)
		if err != nil {
			return nil, fmt.Errorf("deflate: %w", err)
		}
		return zr, nil
	case "br":
		return io.NopCloser(brotli.NewReader(buf)), nil
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", encoding)
	}
}
