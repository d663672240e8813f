package bounded

import "lukechampine.com/uint128"

// Word8 writes w as one byte.
func Word8(w uint8) Builder {
	return construct(1, func(dst []byte, off int) int {
		dst[off] = w
		return off + 1
	})
}

// Int8 writes the two's complement bits of i as one byte.
func Int8(i int8) Builder { return Word8(uint8(i)) }

// Word16BE writes w as 2 bytes, most significant first.
func Word16BE(w uint16) Builder {
	return construct(2, func(dst []byte, off int) int {
		_ = dst[off+1] // bounds check hint to compiler
		dst[off] = byte(w >> 8)
		dst[off+1] = byte(w)
		return off + 2
	})
}

// Word16LE writes w as 2 bytes, least significant first.
func Word16LE(w uint16) Builder {
	return construct(2, func(dst []byte, off int) int {
		_ = dst[off+1] // bounds check hint to compiler
		dst[off] = byte(w)
		dst[off+1] = byte(w >> 8)
		return off + 2
	})
}

// Word32BE writes w as 4 bytes, most significant first.
func Word32BE(w uint32) Builder {
	return construct(4, func(dst []byte, off int) int {
		_ = dst[off+3] // bounds check hint to compiler
		dst[off] = byte(w >> 24)
		dst[off+1] = byte(w >> 16)
		dst[off+2] = byte(w >> 8)
		dst[off+3] = byte(w)
		return off + 4
	})
}

// Word32LE writes w as 4 bytes, least significant first.
func Word32LE(w uint32) Builder {
	return construct(4, func(dst []byte, off int) int {
		_ = dst[off+3] // bounds check hint to compiler
		dst[off] = byte(w)
		dst[off+1] = byte(w >> 8)
		dst[off+2] = byte(w >> 16)
		dst[off+3] = byte(w >> 24)
		return off + 4
	})
}

// Word64BE writes w as 8 bytes, most significant first.
func Word64BE(w uint64) Builder {
	return construct(8, func(dst []byte, off int) int {
		return putWord64BE(dst, off, w)
	})
}

// Word64LE writes w as 8 bytes, least significant first.
func Word64LE(w uint64) Builder {
	return construct(8, func(dst []byte, off int) int {
		return putWord64LE(dst, off, w)
	})
}

// Word128BE writes w as 16 bytes: the high word then the low word, each
// most significant first.
func Word128BE(w uint128.Uint128) Builder {
	return construct(16, func(dst []byte, off int) int {
		return putWord64BE(dst, putWord64BE(dst, off, w.Hi), w.Lo)
	})
}

// Word128LE writes w as 16 bytes: the low word then the high word, each
// least significant first.
func Word128LE(w uint128.Uint128) Builder {
	return construct(16, func(dst []byte, off int) int {
		return putWord64LE(dst, putWord64LE(dst, off, w.Lo), w.Hi)
	})
}

// Int16BE writes the two's complement bits of i big-endian.
func Int16BE(i int16) Builder { return Word16BE(uint16(i)) }

// Int16LE writes the two's complement bits of i little-endian.
func Int16LE(i int16) Builder { return Word16LE(uint16(i)) }

// Int32BE writes the two's complement bits of i big-endian.
func Int32BE(i int32) Builder { return Word32BE(uint32(i)) }

// Int32LE writes the two's complement bits of i little-endian.
func Int32LE(i int32) Builder { return Word32LE(uint32(i)) }

// Int64BE writes the two's complement bits of i big-endian.
func Int64BE(i int64) Builder { return Word64BE(uint64(i)) }

// Int64LE writes the two's complement bits of i little-endian.
func Int64LE(i int64) Builder { return Word64LE(uint64(i)) }

func putWord64BE(dst []byte, off int, w uint64) int {
	_ = dst[off+7] // bounds check hint to compiler
	dst[off] = byte(w >> 56)
	dst[off+1] = byte(w >> 48)
	dst[off+2] = byte(w >> 40)
	dst[off+3] = byte(w >> 32)
	dst[off+4] = byte(w >> 24)
	dst[off+5] = byte(w >> 16)
	dst[off+6] = byte(w >> 8)
	dst[off+7] = byte(w)
	return off + 8
}

func putWord64LE(dst []byte, off int, w uint64) int {
	_ = dst[off+7] // bounds check hint to compiler
	dst[off] = byte(w)
	dst[off+1] = byte(w >> 8)
	dst[off+2] = byte(w >> 16)
	dst[off+3] = byte(w >> 24)
	dst[off+4] = byte(w >> 32)
	dst[off+5] = byte(w >> 40)
	dst[off+6] = byte(w >> 48)
	dst[off+7] = byte(w >> 56)
	return off + 8
}
