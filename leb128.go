package bounded

// Word32LEB128 encodes w in unsigned LEB128. At most 5 bytes.
func Word32LEB128(w uint32) Builder {
	return construct(5, func(dst []byte, off int) int {
		return putULEB128(dst, off, uint64(w))
	})
}

// Word64LEB128 encodes w in unsigned LEB128. At most 10 bytes.
func Word64LEB128(w uint64) Builder {
	return construct(10, func(dst []byte, off int) int {
		return putULEB128(dst, off, w)
	})
}

// Int32SLEB128 encodes i in signed LEB128. At most 5 bytes.
func Int32SLEB128(i int32) Builder {
	return construct(5, func(dst []byte, off int) int {
		return putSLEB128(dst, off, int64(i))
	})
}

// Int64SLEB128 encodes i in signed LEB128. At most 10 bytes.
func Int64SLEB128(i int64) Builder {
	return construct(10, func(dst []byte, off int) int {
		return putSLEB128(dst, off, i)
	})
}

func putULEB128(dst []byte, off int, v uint64) int {
	for v >= 0x80 {
		dst[off] = byte(v) | 0x80
		v >>= 7
		off++
	}
	dst[off] = byte(v)
	return off + 1
}

func putSLEB128(dst []byte, off int, v int64) int {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			dst[off] = b
			return off + 1
		}
		dst[off] = b | 0x80
		off++
	}
}
