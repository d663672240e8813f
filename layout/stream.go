package layout

import (
	"io"
	"iter"

	"github.com/bjaus/bounded"
)

// flushThreshold is the buffered size at which WriteIter writes to w.
const flushThreshold = 4096

// WriteIter encodes each record from seq and writes the bytes to w. Records
// are collected in one buffer sized so that pasting never reallocates, and
// flushed whenever it holds at least 4 KiB. The first encoding or write
// error stops the iteration; bytes of earlier records may already have been
// written.
func (l *Layout) WriteIter(w io.Writer, seq iter.Seq[[]any]) error {
	buf := bounded.NewBuffer(flushThreshold + l.bound)
	var streamErr error
	seq(func(values []any) bool {
		next, err := l.AppendTo(buf, values...)
		if err != nil {
			streamErr = err
			return false
		}
		buf = next
		if buf.Len() >= flushThreshold {
			if _, err := w.Write(buf.Bytes()); err != nil {
				streamErr = err
				return false
			}
			buf.Reset()
		}
		return true
	})
	if streamErr != nil {
		return streamErr
	}
	if buf.Len() == 0 {
		return nil
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteChan encodes records from a channel and writes them to w.
// It is a thin wrapper around [Layout.WriteIter].
func (l *Layout) WriteChan(w io.Writer, ch <-chan []any) error {
	return l.WriteIter(w, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
