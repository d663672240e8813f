package bounded

import (
	"github.com/holiman/uint256"
	"lukechampine.com/uint128"
)

// Case offsets added to a nibble of ten or more.
const (
	upperAlpha = 'A' - 10
	lowerAlpha = 'a' - 10
)

// hexDigit translates the low four bits of w without branching: the mask is
// all ones exactly when the nibble is at least ten.
func hexDigit(w uint64, alpha uint64) byte {
	w &= 0xF
	mask := ^uint64((int64(w) - 10) >> 63)
	return byte((mask & (w + alpha)) | (^mask & (w + '0')))
}

// putHex writes the low digits nibbles of w most significant first.
func putHex(dst []byte, off int, w uint64, digits int, alpha uint64) int {
	_ = dst[off+digits-1]
	for i := digits - 1; i >= 0; i-- {
		dst[off+i] = hexDigit(w, alpha)
		w >>= 4
	}
	return off + digits
}

func hexN(digits int, w uint64, alpha uint64) Builder {
	return construct(digits, func(dst []byte, off int) int {
		return putHex(dst, off, w, digits, alpha)
	})
}

// hexDigits returns the number of nibbles needed for w, at least one.
func hexDigits(w uint16) int {
	switch {
	case w <= 0xF:
		return 1
	case w <= 0xFF:
		return 2
	case w <= 0xFFF:
		return 3
	default:
		return 4
	}
}

func unpaddedHex(bound int, w uint16, alpha uint64) Builder {
	digits := hexDigits(w)
	return Weaken(MustLE(digits, bound), hexN(digits, uint64(w), alpha))
}

// Word8PaddedUpperHex encodes w as exactly 2 uppercase hex digits.
func Word8PaddedUpperHex(w uint8) Builder { return hexN(2, uint64(w), upperAlpha) }

// Word8PaddedLowerHex encodes w as exactly 2 lowercase hex digits.
func Word8PaddedLowerHex(w uint8) Builder { return hexN(2, uint64(w), lowerAlpha) }

// Word8UpperHex encodes w as 1 or 2 uppercase hex digits without leading
// zeros. Bound 2.
func Word8UpperHex(w uint8) Builder { return unpaddedHex(2, uint16(w), upperAlpha) }

// Word8LowerHex encodes w as 1 or 2 lowercase hex digits without leading
// zeros. Bound 2.
func Word8LowerHex(w uint8) Builder { return unpaddedHex(2, uint16(w), lowerAlpha) }

// Word12PaddedUpperHex encodes the low 12 bits of w as exactly 3
// uppercase hex digits.
func Word12PaddedUpperHex(w uint16) Builder { return hexN(3, uint64(w), upperAlpha) }

// Word12PaddedLowerHex encodes the low 12 bits of w as exactly 3
// lowercase hex digits.
func Word12PaddedLowerHex(w uint16) Builder { return hexN(3, uint64(w), lowerAlpha) }

// Word16PaddedUpperHex encodes w as exactly 4 uppercase hex digits.
func Word16PaddedUpperHex(w uint16) Builder { return hexN(4, uint64(w), upperAlpha) }

// Word16PaddedLowerHex encodes w as exactly 4 lowercase hex digits.
func Word16PaddedLowerHex(w uint16) Builder { return hexN(4, uint64(w), lowerAlpha) }

// Word16UpperHex encodes w as 1 to 4 uppercase hex digits without leading
// zeros. Bound 4.
func Word16UpperHex(w uint16) Builder { return unpaddedHex(4, w, upperAlpha) }

// Word16LowerHex encodes w as 1 to 4 lowercase hex digits without leading
// zeros. Bound 4.
func Word16LowerHex(w uint16) Builder { return unpaddedHex(4, w, lowerAlpha) }

// Word32PaddedUpperHex encodes w as exactly 8 uppercase hex digits.
func Word32PaddedUpperHex(w uint32) Builder { return hexN(8, uint64(w), upperAlpha) }

// Word32PaddedLowerHex encodes w as exactly 8 lowercase hex digits.
func Word32PaddedLowerHex(w uint32) Builder { return hexN(8, uint64(w), lowerAlpha) }

// Word48PaddedUpperHex encodes the low 48 bits of w as exactly 12
// uppercase hex digits.
func Word48PaddedUpperHex(w uint64) Builder { return hexN(12, w, upperAlpha) }

// Word48PaddedLowerHex encodes the low 48 bits of w as exactly 12
// lowercase hex digits.
func Word48PaddedLowerHex(w uint64) Builder { return hexN(12, w, lowerAlpha) }

// Word64PaddedUpperHex encodes w as exactly 16 uppercase hex digits.
func Word64PaddedUpperHex(w uint64) Builder { return hexN(16, w, upperAlpha) }

// Word64PaddedLowerHex encodes w as exactly 16 lowercase hex digits.
func Word64PaddedLowerHex(w uint64) Builder { return hexN(16, w, lowerAlpha) }

// Word128PaddedUpperHex encodes w as exactly 32 uppercase hex digits, high
// word first.
func Word128PaddedUpperHex(w uint128.Uint128) Builder {
	return Append(Word64PaddedUpperHex(w.Hi), Word64PaddedUpperHex(w.Lo))
}

// Word128PaddedLowerHex encodes w as exactly 32 lowercase hex digits, high
// word first.
func Word128PaddedLowerHex(w uint128.Uint128) Builder {
	return Append(Word64PaddedLowerHex(w.Hi), Word64PaddedLowerHex(w.Lo))
}

// Word256PaddedUpperHex encodes w as exactly 64 uppercase hex digits, most
// significant limb first. A nil w encodes as zero.
func Word256PaddedUpperHex(w *uint256.Int) Builder { return word256Hex(w, Word64PaddedUpperHex) }

// Word256PaddedLowerHex encodes w as exactly 64 lowercase hex digits, most
// significant limb first. A nil w encodes as zero.
func Word256PaddedLowerHex(w *uint256.Int) Builder { return word256Hex(w, Word64PaddedLowerHex) }

// word256Hex copies the limbs, so later changes to w do not affect the
// builder. uint256.Int stores its limbs least significant first.
func word256Hex(w *uint256.Int, limb func(uint64) Builder) Builder {
	if w == nil {
		w = new(uint256.Int)
	}
	return Concat(limb(w[3]), limb(w[2]), limb(w[1]), limb(w[0]))
}
