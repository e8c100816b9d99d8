package generator

import (
	"fmt"
	"io"
)

// boilerplate precedes the array in overwrite mode. Existing consumers
// match on this exact text, so it must not change.
const boilerplate = "/* generated by Bin2C */\n#include <stdint.h>"

// Document describes one array literal to be written to the output file.
type Document struct {
	// Symbol is the sanitized identifier of the array.
	Symbol string
	// Data holds the bytes to pack, after compression if a codec ran.
	Data []byte
	// Bits is the word width of the array elements.
	Bits uint
	// Mutable drops the const qualifier from the array declaration.
	Mutable bool
	// Define selects #define size declarations over typed constants.
	Define bool
	// UncompressedSize is the byte count before compression, or -1 when
	// compression did not run.
	UncompressedSize int
}

// WriteDocument emits the array literal and its size declarations. Append
// mode only suppresses the boilerplate; everything after it is laid out
// identically in both modes.
//
// Elements are separated by ", ". A newline and a tab additionally precede
// the first element and every element whose first byte sits at a multiple
// of 16 in the packed data, so a full line always covers 16 input bytes
// regardless of the word width.
func WriteDocument(w io.Writer, doc *Document, appendMode bool) error {
	info, ok := LookupWidth(doc.Bits)
	if !ok {
		return fmt.Errorf("invalid word width: %d (allowed: 8, 16, 32)", doc.Bits)
	}

	if !appendMode {
		if _, err := io.WriteString(w, boilerplate); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n\n"); err != nil {
		return err
	}

	qualifier := "const "
	if doc.Mutable {
		qualifier = ""
	}
	count := WordCount(len(doc.Data), doc.Bits)
	if _, err := fmt.Fprintf(w, "%s%s %s[%d] = {", qualifier, info.CType, doc.Symbol, count); err != nil {
		return err
	}

	sc := NewWordScanner(doc.Data, doc.Bits)
	for i := 0; sc.Scan(); i++ {
		if i > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		if i*info.WordBytes%16 == 0 {
			if _, err := io.WriteString(w, "\n\t"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "0x%0*x", info.HexDigits, sc.Word()); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n};\n\n"); err != nil {
		return err
	}

	if err := writeSizeDecl(w, doc.Symbol+"_size", count, doc.Define); err != nil {
		return err
	}
	if doc.UncompressedSize >= 0 {
		if err := writeSizeDecl(w, doc.Symbol+"_size_uncompressed", doc.UncompressedSize, doc.Define); err != nil {
			return err
		}
	}
	return nil
}

// writeSizeDecl emits one size declaration, as a preprocessor macro or as a
// typed constant.
func writeSizeDecl(w io.Writer, name string, value int, define bool) error {
	if define {
		_, err := fmt.Fprintf(w, "#define %s %d\n", name, value)
		return err
	}
	_, err := fmt.Fprintf(w, "const unsigned int %s = %d;\n", name, value)
	return err
}
