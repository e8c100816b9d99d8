//go:build compress

package cmd

import "github.com/bin2c/bin2c/internal/compress"

// newCodec returns the compression codec linked into this build. Builds
// made with the compress tag embed every input zstd-compressed and add the
// uncompressed-size declaration to the output.
func newCodec() (compress.Codec, error) {
	return compress.NewZstd()
}
