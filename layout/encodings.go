package layout

import (
	"fmt"
	"maps"
	"slices"

	"github.com/bjaus/bounded"
)

// encoder turns a field value into a builder. Every builder it returns has
// the same bound.
type encoder struct {
	bound int
	want  string
	build func(value any) (bounded.Builder, bool)
}

func (e encoder) encode(name string, value any) (bounded.Builder, error) {
	b, ok := e.build(value)
	if !ok {
		return bounded.Builder{}, fmt.Errorf("%w: field %q wants %s, got %T", ErrValueType, name, e.want, value)
	}
	return b, nil
}

func unsignedEnc[T unsigned](f func(T) bounded.Builder) encoder {
	var zero T
	return encoder{
		bound: f(zero).Bound(),
		want:  fmt.Sprintf("%T", zero),
		build: func(value any) (bounded.Builder, bool) {
			v, ok := coerceUnsigned[T](value)
			if !ok {
				return bounded.Builder{}, false
			}
			return f(v), true
		},
	}
}

func signedEnc[T signed](f func(T) bounded.Builder) encoder {
	var zero T
	return encoder{
		bound: f(zero).Bound(),
		want:  fmt.Sprintf("%T", zero),
		build: func(value any) (bounded.Builder, bool) {
			v, ok := coerceSigned[T](value)
			if !ok {
				return bounded.Builder{}, false
			}
			return f(v), true
		},
	}
}

func valueEnc[T any](want string, coerce func(any) (T, bool), f func(T) bounded.Builder) encoder {
	var zero T
	return encoder{
		bound: f(zero).Bound(),
		want:  want,
		build: func(value any) (bounded.Builder, bool) {
			v, ok := coerce(value)
			if !ok {
				return bounded.Builder{}, false
			}
			return f(v), true
		},
	}
}

var encodings = map[string]encoder{
	"word8_dec":  unsignedEnc(bounded.Word8Dec),
	"word16_dec": unsignedEnc(bounded.Word16Dec),
	"word32_dec": unsignedEnc(bounded.Word32Dec),
	"word64_dec": unsignedEnc(bounded.Word64Dec),
	"word_dec":   unsignedEnc(bounded.WordDec),
	"int8_dec":   signedEnc(bounded.Int8Dec),
	"int16_dec":  signedEnc(bounded.Int16Dec),
	"int32_dec":  signedEnc(bounded.Int32Dec),
	"int64_dec":  signedEnc(bounded.Int64Dec),
	"int_dec":    signedEnc(bounded.IntDec),

	"word_padded_dec2": unsignedEnc(bounded.WordPaddedDec2),
	"word_padded_dec4": unsignedEnc(bounded.WordPaddedDec4),
	"word_padded_dec9": unsignedEnc(bounded.WordPaddedDec9),

	"word8_padded_upper_hex":  unsignedEnc(bounded.Word8PaddedUpperHex),
	"word8_padded_lower_hex":  unsignedEnc(bounded.Word8PaddedLowerHex),
	"word8_upper_hex":         unsignedEnc(bounded.Word8UpperHex),
	"word8_lower_hex":         unsignedEnc(bounded.Word8LowerHex),
	"word12_padded_upper_hex": unsignedEnc(bounded.Word12PaddedUpperHex),
	"word12_padded_lower_hex": unsignedEnc(bounded.Word12PaddedLowerHex),
	"word16_padded_upper_hex": unsignedEnc(bounded.Word16PaddedUpperHex),
	"word16_padded_lower_hex": unsignedEnc(bounded.Word16PaddedLowerHex),
	"word16_upper_hex":        unsignedEnc(bounded.Word16UpperHex),
	"word16_lower_hex":        unsignedEnc(bounded.Word16LowerHex),
	"word32_padded_upper_hex": unsignedEnc(bounded.Word32PaddedUpperHex),
	"word32_padded_lower_hex": unsignedEnc(bounded.Word32PaddedLowerHex),
	"word48_padded_upper_hex": unsignedEnc(bounded.Word48PaddedUpperHex),
	"word48_padded_lower_hex": unsignedEnc(bounded.Word48PaddedLowerHex),
	"word64_padded_upper_hex": unsignedEnc(bounded.Word64PaddedUpperHex),
	"word64_padded_lower_hex": unsignedEnc(bounded.Word64PaddedLowerHex),

	"word128_padded_upper_hex": valueEnc("uint128.Uint128", coerceUint128, bounded.Word128PaddedUpperHex),
	"word128_padded_lower_hex": valueEnc("uint128.Uint128", coerceUint128, bounded.Word128PaddedLowerHex),
	"word256_padded_upper_hex": valueEnc("*uint256.Int", coerceUint256, bounded.Word256PaddedUpperHex),
	"word256_padded_lower_hex": valueEnc("*uint256.Int", coerceUint256, bounded.Word256PaddedLowerHex),

	"ascii": valueEnc("rune", coerceRune, bounded.ASCII),
	"char":  valueEnc("rune", coerceRune, bounded.Char),

	"word8":      unsignedEnc(bounded.Word8),
	"int8":       signedEnc(bounded.Int8),
	"word16_be":  unsignedEnc(bounded.Word16BE),
	"word16_le":  unsignedEnc(bounded.Word16LE),
	"int16_be":   signedEnc(bounded.Int16BE),
	"int16_le":   signedEnc(bounded.Int16LE),
	"word32_be":  unsignedEnc(bounded.Word32BE),
	"word32_le":  unsignedEnc(bounded.Word32LE),
	"int32_be":   signedEnc(bounded.Int32BE),
	"int32_le":   signedEnc(bounded.Int32LE),
	"word64_be":  unsignedEnc(bounded.Word64BE),
	"word64_le":  unsignedEnc(bounded.Word64LE),
	"int64_be":   signedEnc(bounded.Int64BE),
	"int64_le":   signedEnc(bounded.Int64LE),
	"word128_be": valueEnc("uint128.Uint128", coerceUint128, bounded.Word128BE),
	"word128_le": valueEnc("uint128.Uint128", coerceUint128, bounded.Word128LE),

	"word32_leb128": unsignedEnc(bounded.Word32LEB128),
	"word64_leb128": unsignedEnc(bounded.Word64LEB128),
	"int32_sleb128": signedEnc(bounded.Int32SLEB128),
	"int64_sleb128": signedEnc(bounded.Int64SLEB128),
	"double_dec":    valueEnc("float64", coerceFloat, bounded.DoubleDec),
}

// Encodings returns the names accepted in a field's encoding or union.
func Encodings() []string {
	return slices.Sorted(maps.Keys(encodings))
}
