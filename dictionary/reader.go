package dictionary

import (
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// NewReader wraps r with transparent decompression chosen by the file
// name extension: ".zst" and ".lz4" are decompressed, anything else is
// passed through. The caller owns closing the returned reader; closing
// it does not close r.
func NewReader(name string, r io.Reader) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".zst"):
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}

		return &zstdReader{dec: dec}, nil
	case strings.HasSuffix(name, ".lz4"):
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

type zstdReader struct {
	dec *zstd.Decoder
}

func (r *zstdReader) Read(p []byte) (int, error) {
	return r.dec.Read(p)
}

func (r *zstdReader) Close() error {
	r.dec.Close()
	return nil
}
