// Package compress provides the optional compression stage of the
// conversion pipeline. The pipeline depends only on the Codec interface, so
// the algorithm can change without touching the packer or the formatter.
package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Codec compresses a whole buffer in one shot.
type Codec interface {
	// Name identifies the algorithm, for diagnostics.
	Name() string
	// Compress returns the compressed form of data, leaving data intact.
	Compress(data []byte) ([]byte, error)
}

// Zstd is a Codec backed by a zstandard encoder pinned to the strongest
// compression level. One Zstd value is reusable across conversions.
type Zstd struct {
	enc *zstd.Encoder
}

// NewZstd builds the encoder.
func NewZstd() (*Zstd, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize zstd encoder: %w", err)
	}
	return &Zstd{enc: enc}, nil
}

// Name implements Codec.
func (z *Zstd) Name() string {
	return "zstd"
}

// Compress implements Codec.
func (z *Zstd) Compress(data []byte) ([]byte, error) {
	return z.enc.EncodeAll(data, make([]byte, 0, len(data))), nil
}
