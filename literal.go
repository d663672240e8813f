package bounded

// Literal writes s verbatim. The bound is len(s).
func Literal(s string) Builder {
	if s == "" {
		return Empty()
	}
	return construct(len(s), func(dst []byte, off int) int {
		return off + copy(dst[off:], s)
	})
}

// Bytes writes a copy of p taken when Bytes is called. The bound is
// len(p).
func Bytes(p []byte) Builder {
	return Literal(string(p))
}
