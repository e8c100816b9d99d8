// Package generator implements the conversion pipeline: load the input
// bytes, optionally compress them, pack them into fixed-width words and
// write the words out as a C array literal with size declarations.
package generator

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/bin2c/bin2c/internal/compress"
	"github.com/bin2c/bin2c/internal/config"
)

// Generate runs one conversion end to end. codec may be nil, in which case
// the data is embedded uncompressed. The configuration must have defaults
// applied and be validated before the call; nothing is written when an
// earlier stage fails.
//
// Parameters:
//   - cfg: The conversion to perform.
//   - codec: The compression codec compiled into this build, or nil.
//
// Returns:
//   - error: An error if any stage of the conversion fails.
func Generate(cfg *config.Config, codec compress.Codec) error {
	// 1. Resolve the array identifier.
	symbol := Sanitize(ExpandLabel(cfg.Label, cfg.Input))
	if symbol == "" {
		return fmt.Errorf("label %q expands to an empty identifier", cfg.Label)
	}

	// 2. Load the input.
	data, err := LoadInput(cfg.Input, cfg.Text, cfg.Zero)
	if err != nil {
		return err
	}
	slog.Debug("loaded input", "path", cfg.Input, "bytes", len(data))

	// 3. Compress when a codec is compiled in, keeping the original size
	// for the extra declaration.
	uncompressedSize := -1
	if codec != nil {
		uncompressedSize = len(data)
		data, err = codec.Compress(data)
		if err != nil {
			return fmt.Errorf("failed to compress data: %w", err)
		}
		slog.Debug("compressed input", "codec", codec.Name(), "from", uncompressedSize, "to", len(data))
	}

	// 4. Write the document.
	doc := &Document{
		Symbol:           symbol,
		Data:             data,
		Bits:             cfg.Bits,
		Mutable:          cfg.Mutable,
		Define:           cfg.Define,
		UncompressedSize: uncompressedSize,
	}
	if err := writeOutput(cfg.Output, cfg.Append, doc); err != nil {
		return err
	}
	slog.Debug("wrote output", "path", cfg.Output, "symbol", symbol, "words", WordCount(len(data), cfg.Bits))
	return nil
}

// writeOutput opens the output file in the requested mode and streams the
// document through a buffered writer. The file is closed on every path and
// the first failing write wins.
func writeOutput(path string, appendMode bool, doc *Document) error {
	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := WriteDocument(w, doc, appendMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
