package bounded

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrBound    = errors.New("bound violation")
	ErrConsumed = errors.New("buffer already consumed")
)

// Builder writes at most Bound() bytes into a byte slice starting at an
// offset and reports the offset just past the last byte written.
//
// The zero Builder is the empty builder. Builders are immutable; the
// combinators return new values and never modify their operands.
type Builder struct {
	n     int
	write func(dst []byte, off int) int
}

// Bound returns the maximum number of bytes b may write.
func (b Builder) Bound() int { return b.n }

// run executes b at off. The caller guarantees len(dst) >= off+b.n.
func (b Builder) run(dst []byte, off int) int {
	if b.write == nil {
		return off
	}
	end := b.write(dst, off)
	if checkBounds && (end < off || end > off+b.n) {
		panic(fmt.Errorf("%w: builder of bound %d advanced %d bytes", ErrBound, b.n, end-off))
	}
	return end
}

// construct wraps a primitive writer that never writes more than n bytes.
func construct(n int, write func(dst []byte, off int) int) Builder {
	return Builder{n: n, write: write}
}

// Empty returns the builder that writes nothing. It is the identity for
// [Append].
func Empty() Builder { return Builder{} }

// Append runs a and then runs b at the offset a returned. The bound of the
// result is the sum of the operand bounds.
func Append(a, b Builder) Builder {
	switch {
	case a.write == nil:
		return Builder{n: a.n + b.n, write: b.write}
	case b.write == nil:
		return Builder{n: a.n + b.n, write: a.write}
	}
	return Builder{
		n: a.n + b.n,
		write: func(dst []byte, off int) int {
			return b.write(dst, a.write(dst, off))
		},
	}
}

// Concat appends bs left to right.
func Concat(bs ...Builder) Builder {
	out := Empty()
	for _, b := range bs {
		out = Append(out, b)
	}
	return out
}

// Weaken relabels b with the larger bound certified by p. The bytes b
// writes are unchanged. It panics if p does not start at b's bound.
func Weaken(p LE, b Builder) Builder {
	if p.m != b.n {
		panic(fmt.Errorf("%w: weaken certificate %d <= %d applied to builder of bound %d", ErrBound, p.m, p.n, b.n))
	}
	return Builder{n: p.n, write: b.write}
}

// Substitute relabels b with an equal bound certified by p. It panics if p
// does not start at b's bound.
func Substitute(p EQ, b Builder) Builder {
	if p.n != b.n {
		panic(fmt.Errorf("%w: substitute certificate for bound %d applied to builder of bound %d", ErrBound, p.n, b.n))
	}
	return b
}

// Run allocates exactly b.Bound() bytes, runs b into them and returns the
// prefix that was written.
func Run(b Builder) []byte {
	dst := make([]byte, b.n)
	end := b.run(dst, 0)
	return dst[:end:end]
}
