package generator

// WidthInfo holds the emission properties for a given word width.
type WidthInfo struct {
	// CType is the element type named in the array declaration.
	CType string
	// HexDigits is the number of zero-padded hex digits per element.
	HexDigits int
	// WordBytes is the number of input bytes packed into one element.
	WordBytes int
}

// widthRegistry serves as the central source of truth for the supported
// word widths and their emission properties.
var widthRegistry = map[uint]WidthInfo{
	8: {
		CType:     "uint8_t",
		HexDigits: 2,
		WordBytes: 1,
	},
	16: {
		CType:     "uint16_t",
		HexDigits: 4,
		WordBytes: 2,
	},
	32: {
		CType:     "uint32_t",
		HexDigits: 8,
		WordBytes: 4,
	},
}

// LookupWidth returns the emission properties for the given word width.
// The second return value is false for widths outside the registry.
func LookupWidth(bits uint) (WidthInfo, bool) {
	info, ok := widthRegistry[bits]
	return info, ok
}
