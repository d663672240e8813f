package bounded

import "fmt"

// guardLen is the number of canary bytes on each side of the window Check
// gives a builder.
const guardLen = 32

// Check runs b inside a window of exactly b.Bound() bytes surrounded by
// canary bytes and reports an error wrapping [ErrBound] if b touched
// anything outside the window, returned an offset outside it, or panicked.
// It runs b once per canary pattern so a stray write of the canary value
// itself cannot hide.
func Check(b Builder) error {
	for _, canary := range [...]byte{0x00, 0xFF} {
		if err := checkWith(b, canary); err != nil {
			return err
		}
	}
	return nil
}

func checkWith(b Builder, canary byte) (err error) {
	dst := make([]byte, guardLen+b.n+guardLen)
	for i := range dst {
		dst[i] = canary
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: builder of bound %d panicked: %v", ErrBound, b.n, r)
		}
	}()

	end := guardLen
	if b.write != nil {
		end = b.write(dst, guardLen)
	}
	if end < guardLen || end > guardLen+b.n {
		return fmt.Errorf("%w: builder of bound %d advanced %d bytes", ErrBound, b.n, end-guardLen)
	}
	for i, c := range dst {
		if i >= guardLen && i < guardLen+b.n {
			continue
		}
		if c != canary {
			return fmt.Errorf("%w: builder of bound %d wrote at relative offset %d", ErrBound, b.n, i-guardLen)
		}
	}
	return nil
}
