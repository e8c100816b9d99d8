package generator

import (
	"bytes"
	"fmt"
	"os"
)

// LoadInput reads the whole input file into memory. In text mode Windows
// line endings are normalized to a single newline, on every platform, so
// the emitted array does not depend on where it was generated. With
// zeroTerminate set, exactly one 0x00 byte is appended after normalization;
// every later stage, compression included, sees the terminator as part of
// the data.
func LoadInput(path string, textMode, zeroTerminate bool) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	if textMode {
		data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	}
	if zeroTerminate {
		data = append(data, 0)
	}
	return data, nil
}
