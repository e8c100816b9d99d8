//go:build !compress

package cmd

import "github.com/bin2c/bin2c/internal/compress"

// newCodec returns the compression codec linked into this build. Default
// builds embed the input bytes unchanged; compile with -tags compress to
// enable compression.
func newCodec() (compress.Codec, error) {
	return nil, nil
}
