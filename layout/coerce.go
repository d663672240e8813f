package layout

import (
	"math"
	"unicode/utf8"

	"github.com/holiman/uint256"
	"lukechampine.com/uint128"
)

type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

type signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// asUint64 accepts any Go integer, and floats holding an integral value as
// produced by YAML and JSON decoders.
func asUint64(value any) (uint64, bool) {
	switch v := value.(type) {
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case float64:
		if v >= 0 && v < math.MaxUint64 && v == math.Trunc(v) {
			return uint64(v), true
		}
	default:
		if i, ok := asInt64(value); ok && i >= 0 {
			return uint64(i), true
		}
	}
	return 0, false
}

func asInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
	case uint:
		if uint64(v) <= math.MaxInt64 {
			return int64(v), true
		}
	case float64:
		if v >= math.MinInt64 && v < math.MaxInt64 && v == math.Trunc(v) {
			return int64(v), true
		}
	}
	return 0, false
}

// coerceUnsigned converts value to T when it is an integer in T's range.
func coerceUnsigned[T unsigned](value any) (T, bool) {
	u, ok := asUint64(value)
	if !ok || uint64(T(u)) != u {
		return 0, false
	}
	return T(u), true
}

// coerceSigned converts value to T when it is an integer in T's range.
func coerceSigned[T signed](value any) (T, bool) {
	i, ok := asInt64(value)
	if !ok || int64(T(i)) != i {
		return 0, false
	}
	return T(i), true
}

// coerceRune accepts a code point or a string holding exactly one rune.
func coerceRune(value any) (rune, bool) {
	if s, ok := value.(string); ok {
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || size != len(s) {
			return 0, false
		}
		return r, true
	}
	return coerceSigned[rune](value)
}

func coerceFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	}
	if i, ok := asInt64(value); ok {
		return float64(i), true
	}
	if u, ok := asUint64(value); ok {
		return float64(u), true
	}
	return 0, false
}

func coerceUint128(value any) (uint128.Uint128, bool) {
	if v, ok := value.(uint128.Uint128); ok {
		return v, true
	}
	u, ok := asUint64(value)
	return uint128.From64(u), ok
}

func coerceUint256(value any) (*uint256.Int, bool) {
	switch v := value.(type) {
	case *uint256.Int:
		return v, v != nil
	case uint256.Int:
		return &v, true
	}
	u, ok := asUint64(value)
	return uint256.NewInt(u), ok
}
