package bounded

// replacement is U+FFFD, written in place of surrogates and values outside
// the Unicode range.
const replacement = '\uFFFD'

// ASCII encodes c as a single byte. c must be below 0x80; other values are
// truncated to their low byte.
func ASCII(c rune) Builder {
	return construct(1, func(dst []byte, off int) int {
		dst[off] = byte(c)
		return off + 1
	})
}

// Char encodes r as UTF-8. At most 4 bytes. Surrogate halves and values
// outside the Unicode range encode as U+FFFD.
func Char(r rune) Builder {
	return construct(4, func(dst []byte, off int) int {
		return putChar(dst, off, r)
	})
}

func putChar(dst []byte, off int, r rune) int {
	switch c := uint32(r); {
	case c < 0x80:
		dst[off] = byte(c)
		return off + 1
	case c < 0x800:
		_ = dst[off+1]
		dst[off] = 0xC0 | byte(c>>6)
		dst[off+1] = 0x80 | byte(c)&0x3F
		return off + 2
	case c >= 0xD800 && c <= 0xDFFF, c > 0x10FFFF:
		return putChar3(dst, off, replacement)
	case c < 0x10000:
		return putChar3(dst, off, c)
	default:
		_ = dst[off+3]
		dst[off] = 0xF0 | byte(c>>18)
		dst[off+1] = 0x80 | byte(c>>12)&0x3F
		dst[off+2] = 0x80 | byte(c>>6)&0x3F
		dst[off+3] = 0x80 | byte(c)&0x3F
		return off + 4
	}
}

func putChar3(dst []byte, off int, c uint32) int {
	_ = dst[off+2]
	dst[off] = 0xE0 | byte(c>>12)
	dst[off+1] = 0x80 | byte(c>>6)&0x3F
	dst[off+2] = 0x80 | byte(c)&0x3F
	return off + 3
}
