package bounded

import "fmt"

// LE certifies that one bound is less than or equal to another. The zero
// value certifies 0 <= 0.
type LE struct{ m, n int }

// EQ certifies that two bounds are equal. The zero value certifies 0 = 0.
type EQ struct{ n int }

// ProveLE returns a certificate that m <= n.
func ProveLE(m, n int) (LE, error) {
	if m < 0 || m > n {
		return LE{}, fmt.Errorf("%w: %d <= %d does not hold", ErrBound, m, n)
	}
	return LE{m: m, n: n}, nil
}

// MustLE is like [ProveLE] but panics when m > n. It is meant for
// certificates over constant arithmetic.
func MustLE(m, n int) LE {
	p, err := ProveLE(m, n)
	if err != nil {
		panic(err)
	}
	return p
}

// ProveEQ returns a certificate that m = n.
func ProveEQ(m, n int) (EQ, error) {
	if m < 0 || m != n {
		return EQ{}, fmt.Errorf("%w: %d = %d does not hold", ErrBound, m, n)
	}
	return EQ{n: n}, nil
}

// MustEQ is like [ProveEQ] but panics when m != n.
func MustEQ(m, n int) EQ {
	p, err := ProveEQ(m, n)
	if err != nil {
		panic(err)
	}
	return p
}

// Lower returns the smaller side of the certificate.
func (p LE) Lower() int { return p.m }

// Upper returns the larger side of the certificate.
func (p LE) Upper() int { return p.n }

// Bound returns the certified bound.
func (p EQ) Bound() int { return p.n }

// Trans chains p (a <= b) with q (b <= c) into a <= c.
func (p LE) Trans(q LE) (LE, error) {
	if p.n != q.m {
		return LE{}, fmt.Errorf("%w: cannot chain %d <= %d with %d <= %d", ErrBound, p.m, p.n, q.m, q.n)
	}
	return LE{m: p.m, n: q.n}, nil
}
