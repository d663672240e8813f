package bounded

import "math/bits"

// Worst-case decimal widths. The machine-word bounds follow bits.UintSize.
const (
	word8DecBound  = 3
	word16DecBound = 5
	word32DecBound = 10
	word64DecBound = 20
	wordDecBound   = 10 << (bits.UintSize / 64)

	int8DecBound  = 4
	int16DecBound = 6
	int32DecBound = 11
	int64DecBound = 20
	intDecBound   = 1 + wordDecBound - bits.UintSize/64
)

// Word8Dec encodes w in decimal. At most 3 bytes.
func Word8Dec(w uint8) Builder {
	return construct(word8DecBound, func(dst []byte, off int) int {
		return putWord8Dec(dst, off, w)
	})
}

// Word16Dec encodes w in decimal. At most 5 bytes.
func Word16Dec(w uint16) Builder {
	return construct(word16DecBound, func(dst []byte, off int) int {
		return putWordDec(dst, off, uint64(w))
	})
}

// Word32Dec encodes w in decimal. At most 10 bytes.
func Word32Dec(w uint32) Builder {
	return construct(word32DecBound, func(dst []byte, off int) int {
		return putWordDec(dst, off, uint64(w))
	})
}

// Word64Dec encodes w in decimal. At most 20 bytes.
func Word64Dec(w uint64) Builder {
	return construct(word64DecBound, func(dst []byte, off int) int {
		return putWordDec(dst, off, w)
	})
}

// WordDec encodes w in decimal. At most 20 bytes on 64-bit platforms and
// 10 bytes on 32-bit ones.
func WordDec(w uint) Builder {
	return construct(wordDecBound, func(dst []byte, off int) int {
		return putWordDec(dst, off, uint64(w))
	})
}

// Int8Dec encodes i in decimal with a leading '-' when negative. At most 4
// bytes.
func Int8Dec(i int8) Builder {
	return construct(int8DecBound, func(dst []byte, off int) int {
		return putIntDec(dst, off, int64(i))
	})
}

// Int16Dec encodes i in decimal. At most 6 bytes.
func Int16Dec(i int16) Builder {
	return construct(int16DecBound, func(dst []byte, off int) int {
		return putIntDec(dst, off, int64(i))
	})
}

// Int32Dec encodes i in decimal. At most 11 bytes.
func Int32Dec(i int32) Builder {
	return construct(int32DecBound, func(dst []byte, off int) int {
		return putIntDec(dst, off, int64(i))
	})
}

// Int64Dec encodes i in decimal. At most 20 bytes.
func Int64Dec(i int64) Builder {
	return construct(int64DecBound, func(dst []byte, off int) int {
		return putIntDec(dst, off, i)
	})
}

// IntDec encodes i in decimal. At most 20 bytes on 64-bit platforms and 11
// bytes on 32-bit ones.
func IntDec(i int) Builder {
	return construct(intDecBound, func(dst []byte, off int) int {
		return putIntDec(dst, off, int64(i))
	})
}

// putWord8Dec writes hundreds, tens and ones unconditionally and advances
// past a leading digit only when it is significant, so no reversal or loop
// is needed.
func putWord8Dec(dst []byte, off int, w uint8) int {
	_ = dst[off+2]
	n1 := w / 10
	ones := w - n1*10
	hundreds := n1 / 10
	tens := n1 - hundreds*10

	// 1 + ((x-1) >> 63) is 0 for x == 0 and 1 for x > 0.
	hasHundreds := 1 + int((int64(hundreds)-1)>>63)
	hasTens := 1 + int((int64(n1)-1)>>63)

	dst[off] = '0' + hundreds
	off += hasHundreds
	dst[off] = '0' + tens
	off += hasTens
	dst[off] = '0' + ones
	return off + 1
}

func putWordDec(dst []byte, off int, w uint64) int {
	if w == 0 {
		dst[off] = '0'
		return off + 1
	}
	start := off
	for w != 0 {
		q := w / 10
		dst[off] = byte('0' + w - q*10)
		off++
		w = q
	}
	reverse(dst[start:off])
	return off
}

func putIntDec(dst []byte, off int, i int64) int {
	if i >= 0 {
		return putWordDec(dst, off, uint64(i))
	}
	dst[off] = '-'
	// ^i + 1 is the magnitude, including for math.MinInt64.
	return putWordDec(dst, off+1, uint64(^i)+1)
}

func reverse(p []byte) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
