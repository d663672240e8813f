package bounded

// div10 is floor(x/10) for x < 2^30. Larger inputs give a wrong quotient,
// never a panic.
func div10(x uint64) uint64 {
	return (x * 0x1999999A) >> 32
}

// WordPaddedDec2 encodes w as exactly two decimal digits with a leading
// zero as needed. w must be below 100; other values produce unspecified
// bytes (still exactly two).
func WordPaddedDec2(w uint) Builder {
	return construct(2, func(dst []byte, off int) int {
		return putPaddedDec(dst, off, uint64(w), 2)
	})
}

// WordPaddedDec4 encodes w as exactly four decimal digits. w must be below
// 10000.
func WordPaddedDec4(w uint) Builder {
	return construct(4, func(dst []byte, off int) int {
		return putPaddedDec(dst, off, uint64(w), 4)
	})
}

// WordPaddedDec9 encodes w as exactly nine decimal digits, as used for
// nanosecond fields. w must be below 1e9.
func WordPaddedDec9(w uint) Builder {
	return construct(9, func(dst []byte, off int) int {
		return putPaddedDec(dst, off, uint64(w), 9)
	})
}

// putPaddedDec fills dst[off:off+digits] from the last place backwards,
// so the digits land in order without a reversal.
func putPaddedDec(dst []byte, off int, w uint64, digits int) int {
	_ = dst[off+digits-1]
	for i := off + digits - 1; i >= off; i-- {
		q := div10(w)
		dst[i] = byte('0' + w - q*10)
		w = q
	}
	return off + digits
}
