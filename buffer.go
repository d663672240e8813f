package bounded

import (
	"fmt"

	"go.uber.org/zap"
)

// Buffer is an owned destination for [PasteGrow]: a byte region with a
// logical length (Cap) and a write cursor (Len).
//
// A Buffer passed to PasteGrow or Freeze is consumed. Every method of a
// consumed Buffer panics with an error wrapping [ErrConsumed]; only the
// handle PasteGrow returns may be used afterwards.
type Buffer struct {
	data     []byte
	off      int
	consumed bool
}

// NewBuffer returns an empty Buffer with room for capacity bytes.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{data: make([]byte, max(capacity, 0))}
}

func (buf *Buffer) live() {
	if buf.consumed {
		panic(fmt.Errorf("%w: buffer of length %d at offset %d", ErrConsumed, len(buf.data), buf.off))
	}
}

// Len returns the number of bytes written so far.
func (buf *Buffer) Len() int {
	buf.live()
	return buf.off
}

// Cap returns the logical length of the buffer.
func (buf *Buffer) Cap() int {
	buf.live()
	return len(buf.data)
}

// Bytes returns the written prefix. It aliases the buffer and is only valid
// until the next PasteGrow.
func (buf *Buffer) Bytes() []byte {
	buf.live()
	return buf.data[:buf.off:buf.off]
}

// Reset moves the write cursor back to the start, keeping the region.
// Slices returned by Bytes are overwritten by later pastes.
func (buf *Buffer) Reset() {
	buf.live()
	buf.off = 0
}

// Freeze consumes the buffer and returns its written prefix.
func (buf *Buffer) Freeze() []byte {
	out := buf.Bytes()
	buf.consumed = true
	buf.data = nil
	return out
}

// PasteGrow runs b at the end of buf. When fewer than b.Bound() bytes
// remain, the contents move to a new region of exactly Len()+b.Bound()
// bytes first. buf is consumed; use the returned Buffer instead.
func PasteGrow(b Builder, buf *Buffer) *Buffer {
	buf.live()
	data, off := buf.data, buf.off
	buf.consumed = true
	buf.data = nil

	if need := off + b.n; need > len(data) {
		grown := make([]byte, need)
		copy(grown, data[:off])
		if ce := Logger().Check(zap.DebugLevel, "buffer grown"); ce != nil {
			ce.Write(zap.Int("from", len(data)), zap.Int("to", need))
		}
		data = grown
	}
	return &Buffer{data: data, off: b.run(data, off)}
}
