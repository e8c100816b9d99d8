package generator

import (
	"path/filepath"
	"strings"
)

// Label placeholders, expanded before sanitization.
const (
	placeholderBase = "$*" // input file name without directories or extension
	placeholderFull = "$@" // input file name without directories
)

// ExpandLabel replaces the $* and $@ placeholders in label with names
// derived from the input path: $* becomes the base name of the input file
// with its extension removed, $@ the full file name. Directory components
// never take part in the expansion.
//
// Parameters:
//   - label: The label, possibly containing placeholders.
//   - inputPath: The path of the input file the placeholders refer to.
//
// Returns:
//   - string: The label with all placeholders expanded.
func ExpandLabel(label, inputPath string) string {
	full := filepath.Base(inputPath)
	base := strings.TrimSuffix(full, filepath.Ext(full))
	label = strings.ReplaceAll(label, placeholderBase, base)
	label = strings.ReplaceAll(label, placeholderFull, full)
	return label
}

// Sanitize maps name onto a valid C identifier. Every byte outside
// [A-Za-z0-9_] becomes an underscore, and a leading digit is replaced (not
// prefixed), so the result always has the same length as the input.
// Sanitizing twice yields the same result as sanitizing once.
func Sanitize(name string) string {
	if name == "" {
		return ""
	}
	b := []byte(name)
	if !isAlpha(b[0]) && b[0] != '_' {
		b[0] = '_'
	}
	for i := 1; i < len(b); i++ {
		if !isAlpha(b[i]) && !isDigit(b[i]) && b[i] != '_' {
			b[i] = '_'
		}
	}
	return string(b)
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
