package bounded

import "math"

const (
	doubleDecBound = 32

	log10of2 = 0.30102999566398120

	// Digit extraction stops once the remainder drops below precision past
	// the units place, and unconditionally after lastPlace.
	precision = 1e-14
	lastPlace = -15
)

// DoubleDec encodes d in decimal. At most 32 bytes.
//
// Values with a decimal magnitude of 14 or more, 9 or more when negative,
// or -9 or less use scientific notation ("1.5e+20"); others use plain
// notation ("-12.75", "0.5"). Zero encodes as "0". Digits are extracted
// with float arithmetic and cut at a fixed precision, so some values print
// with a long tail (2.25 prints as 2.2499999999999...). The output for
// NaN and infinities is not part of the contract.
func DoubleDec(d float64) Builder {
	return construct(doubleDecBound, func(dst []byte, off int) int {
		return putDoubleDec(dst, off, d)
	})
}

func putDoubleDec(dst []byte, off int, d float64) int {
	switch {
	case d == 0:
		dst[off] = '0'
		return off + 1
	case math.IsNaN(d):
		return off + copy(dst[off:], "NaN")
	case math.IsInf(d, 1):
		return off + copy(dst[off:], "Inf")
	case math.IsInf(d, -1):
		return off + copy(dst[off:], "-Inf")
	}

	negative := d < 0
	if negative {
		dst[off] = '-'
		off++
		d = -d
	}

	mag := magnitude(d)
	if mag >= 14 || (negative && mag >= 9) || mag <= -9 {
		mantissa := scale(d, mag)
		// Rounding in scale can land just outside [1, 10).
		if mantissa >= 10 {
			mantissa /= 10
			mag++
		} else if mantissa < 1 {
			mantissa *= 10
			mag--
		}
		off = putDigits(dst, off, mantissa, 0)
		dst[off] = 'e'
		off++
		if mag < 0 {
			dst[off] = '-'
			mag = -mag
		} else {
			dst[off] = '+'
		}
		return putWordDec(dst, off+1, uint64(mag))
	}
	return putDigits(dst, off, d, max(mag, 0))
}

// magnitude returns floor(log10(d)) for a positive finite d. The binary
// exponent gives an estimate within one of the answer, which is then moved
// until d lies in [10^mag, 10^(mag+1)).
func magnitude(d float64) int {
	_, exp := math.Frexp(d)
	mag := int(math.Floor(float64(exp-1) * log10of2))
	for atLeastPow10(d, mag+1) {
		mag++
	}
	for !atLeastPow10(d, mag) {
		mag--
	}
	return mag
}

// atLeastPow10 reports d >= 10^e. Below 10^-300 both sides are scaled up
// so the comparison is not made against a rounded subnormal.
func atLeastPow10(d float64, e int) bool {
	if e < -300 {
		return d*1e300 >= math.Pow10(e+300)
	}
	return d >= math.Pow10(e)
}

// scale returns d / 10^mag. Multiplying by an exact power of ten keeps
// small magnitudes precise; the split keeps subnormals finite.
func scale(d float64, mag int) float64 {
	if mag < -300 {
		d *= 1e300
		mag += 300
	}
	if mag < 0 {
		return d * math.Pow10(-mag)
	}
	return d / math.Pow10(mag)
}

// putDigits writes rem most significant digit first starting at the given
// decimal place, inserting a point after the units place when a fraction
// remains.
func putDigits(dst []byte, off int, rem float64, place int) int {
	for {
		weight := math.Pow10(place)
		digit := min(max(math.Floor(rem/weight), 0), 9)
		rem -= digit * weight
		dst[off] = '0' + byte(digit)
		off++
		place--
		if place < 0 && (rem < precision || place < lastPlace) {
			return off
		}
		if place == -1 {
			dst[off] = '.'
			off++
		}
	}
}
