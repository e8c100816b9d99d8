package generator

// WordScanner packs a byte buffer into fixed-width little-endian words, one
// Scan call at a time. It is lazy and restartable: Reset rewinds it, so a
// caller may walk the same buffer more than once. Construct with
// NewWordScanner; the zero value is an exhausted scanner.
type WordScanner struct {
	buf  []byte
	bits uint
	pos  int
	word uint32
}

// NewWordScanner returns a scanner over buf emitting words of the given bit
// width. The width must come from the width registry (8, 16 or 32); callers
// validate it before constructing a scanner.
func NewWordScanner(buf []byte, bits uint) *WordScanner {
	return &WordScanner{buf: buf, bits: bits}
}

// Scan packs the next word and reports whether one was available. Bytes are
// packed least significant first. The final word may cover fewer than
// bits/8 bytes; its missing high bits stay zero.
func (s *WordScanner) Scan() bool {
	if s.pos >= len(s.buf) {
		return false
	}
	var word uint32
	for shift := uint(0); shift < s.bits && s.pos < len(s.buf); shift += 8 {
		word |= uint32(s.buf[s.pos]) << shift
		s.pos++
	}
	s.word = word
	return true
}

// Word returns the word packed by the last successful Scan.
func (s *WordScanner) Word() uint32 {
	return s.word
}

// Reset rewinds the scanner to the start of the buffer.
func (s *WordScanner) Reset() {
	s.pos = 0
	s.word = 0
}

// WordCount returns the number of words needed to hold byteCount bytes at
// the given width. The final word may be partial, so the division rounds
// up.
func WordCount(byteCount int, bits uint) int {
	wordBytes := int(bits / 8)
	return (byteCount + wordBytes - 1) / wordBytes
}
