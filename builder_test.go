package bounded_test

import (
	"testing"

	"github.com/bjaus/bounded"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestEmpty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, bounded.Empty().Bound())
	assert.Empty(t, bounded.Run(bounded.Empty()))

	var zero bounded.Builder
	assert.Empty(t, bounded.Run(zero))
}

func TestAppendIdentity(t *testing.T) {
	t.Parallel()
	b := bounded.Word16Dec(4096)
	assert.Equal(t, bounded.Run(b), bounded.Run(bounded.Append(bounded.Empty(), b)))
	assert.Equal(t, bounded.Run(b), bounded.Run(bounded.Append(b, bounded.Empty())))
	assert.Equal(t, b.Bound(), bounded.Append(bounded.Empty(), b).Bound())
}

func TestAppendSequencing(t *testing.T) {
	t.Parallel()
	b := bounded.Append(bounded.Word8Dec(7), bounded.Literal("px"))
	assert.Equal(t, 5, b.Bound())
	assert.Equal(t, "7px", string(bounded.Run(b)))
}

func TestAppendAssociative(t *testing.T) {
	t.Parallel()
	a := bounded.Int32Dec(-120)
	b := bounded.ASCII(':')
	c := bounded.Word16PaddedLowerHex(0xBEEF)

	left := bounded.Append(bounded.Append(a, b), c)
	right := bounded.Append(a, bounded.Append(b, c))
	assert.Equal(t, left.Bound(), right.Bound())
	assert.Equal(t, string(bounded.Run(left)), string(bounded.Run(right)))
	assert.Equal(t, "-120:beef", string(bounded.Run(left)))
}

func TestConcat(t *testing.T) {
	t.Parallel()
	b := bounded.Concat(
		bounded.Word8Dec(1),
		bounded.ASCII('.'),
		bounded.Word8Dec(22),
		bounded.ASCII('.'),
		bounded.Word8Dec(133),
	)
	assert.Equal(t, 3+1+3+1+3, b.Bound())
	assert.Equal(t, "1.22.133", string(bounded.Run(b)))
	assert.Equal(t, 0, bounded.Concat().Bound())
}

func TestRunShrinksToWritten(t *testing.T) {
	t.Parallel()
	b := bounded.Word64Dec(42)
	out := bounded.Run(b)
	assert.Equal(t, "42", string(out))
	assert.LessOrEqual(t, len(out), b.Bound())
	assert.Equal(t, len(out), cap(out))
}

func TestProveLE(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		m, n    int
		wantErr require.ErrorAssertionFunc
	}{
		"equal":    {m: 4, n: 4, wantErr: require.NoError},
		"less":     {m: 1, n: 4, wantErr: require.NoError},
		"zero":     {m: 0, n: 0, wantErr: require.NoError},
		"greater":  {m: 5, n: 4, wantErr: require.Error},
		"negative": {m: -1, n: 4, wantErr: require.Error},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			p, err := bounded.ProveLE(tc.m, tc.n)
			tc.wantErr(t, err)
			if err != nil {
				assert.ErrorIs(t, err, bounded.ErrBound)
				return
			}
			assert.Equal(t, tc.m, p.Lower())
			assert.Equal(t, tc.n, p.Upper())
		})
	}
}

func TestProveEQ(t *testing.T) {
	t.Parallel()
	p, err := bounded.ProveEQ(3+5, 5+3)
	require.NoError(t, err)
	assert.Equal(t, 8, p.Bound())

	_, err = bounded.ProveEQ(3, 4)
	assert.ErrorIs(t, err, bounded.ErrBound)
}

func TestTrans(t *testing.T) {
	t.Parallel()
	p, err := bounded.MustLE(1, 3).Trans(bounded.MustLE(3, 8))
	require.NoError(t, err)
	assert.Equal(t, 1, p.Lower())
	assert.Equal(t, 8, p.Upper())

	_, err = bounded.MustLE(1, 3).Trans(bounded.MustLE(4, 8))
	assert.ErrorIs(t, err, bounded.ErrBound)
}

func TestMustPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { bounded.MustLE(9, 2) })
	assert.Panics(t, func() { bounded.MustEQ(9, 2) })
}

func TestWeaken(t *testing.T) {
	t.Parallel()
	b := bounded.Word8Dec(200)
	w := bounded.Weaken(bounded.MustLE(3, 10), b)
	assert.Equal(t, 10, w.Bound())
	assert.Equal(t, bounded.Run(b), bounded.Run(w))
}

func TestWeakenMismatchPanics(t *testing.T) {
	t.Parallel()
	assert.PanicsWithError(t,
		"bound violation: weaken certificate 2 <= 10 applied to builder of bound 3",
		func() { bounded.Weaken(bounded.MustLE(2, 10), bounded.Word8Dec(1)) },
	)
}

func TestWeakenUnifiesBranches(t *testing.T) {
	t.Parallel()
	pick := func(small bool) bounded.Builder {
		if small {
			return bounded.Weaken(bounded.MustLE(2, 4), bounded.Word8PaddedLowerHex(0xA))
		}
		return bounded.Word16PaddedLowerHex(0xABCD)
	}
	assert.Equal(t, pick(true).Bound(), pick(false).Bound())
	assert.Equal(t, "0a", string(bounded.Run(pick(true))))
	assert.Equal(t, "abcd", string(bounded.Run(pick(false))))
}

func TestSubstitute(t *testing.T) {
	t.Parallel()
	a, b := bounded.Word8Dec(1), bounded.Word32Dec(2)
	ab := bounded.Append(a, b)
	s := bounded.Substitute(bounded.MustEQ(a.Bound()+b.Bound(), b.Bound()+a.Bound()), ab)
	assert.Equal(t, ab.Bound(), s.Bound())
	assert.Equal(t, "12", string(bounded.Run(s)))

	assert.Panics(t, func() { bounded.Substitute(bounded.MustEQ(4, 4), ab) })
}

func TestPasteGrowInPlace(t *testing.T) {
	t.Parallel()
	buf := bounded.NewBuffer(32)
	buf = bounded.PasteGrow(bounded.Literal("id="), buf)
	buf = bounded.PasteGrow(bounded.Word32Dec(17), buf)
	assert.Equal(t, 32, buf.Cap())
	assert.Equal(t, 5, buf.Len())
	assert.Equal(t, "id=17", string(buf.Freeze()))
}

func TestPasteGrowReallocatesExactly(t *testing.T) {
	t.Parallel()
	buf := bounded.NewBuffer(4)
	buf = bounded.PasteGrow(bounded.Literal("abc"), buf)
	before := append([]byte(nil), buf.Bytes()...)

	b := bounded.Word64Dec(9)
	buf = bounded.PasteGrow(b, buf)
	assert.Equal(t, 3+b.Bound(), buf.Cap())
	assert.Equal(t, before, buf.Bytes()[:len(before)])
	assert.Equal(t, "abc9", string(buf.Bytes()))
}

func TestPasteGrowPreservesPrefix(t *testing.T) {
	t.Parallel()
	buf := bounded.NewBuffer(0)
	var want []byte
	for i := range 200 {
		b := bounded.Append(bounded.IntDec(i*i-5000), bounded.ASCII(','))
		prefix := string(buf.Bytes())
		buf = bounded.PasteGrow(b, buf)
		require.Equal(t, prefix, string(buf.Bytes()[:len(prefix)]))
		want = append(want, bounded.Run(b)...)
	}
	assert.Equal(t, string(want), string(buf.Freeze()))
}

func TestConsumedBufferPanics(t *testing.T) {
	t.Parallel()
	old := bounded.NewBuffer(1)
	next := bounded.PasteGrow(bounded.Literal("xy"), old)
	assert.Equal(t, "xy", string(next.Bytes()))

	tests := map[string]func(){
		"Len":       func() { old.Len() },
		"Cap":       func() { old.Cap() },
		"Bytes":     func() { old.Bytes() },
		"Freeze":    func() { old.Freeze() },
		"PasteGrow": func() { bounded.PasteGrow(bounded.Empty(), old) },
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				assert.ErrorIs(t, err, bounded.ErrConsumed)
			}()
			fn()
		})
	}
}

func TestFreezeConsumes(t *testing.T) {
	t.Parallel()
	buf := bounded.PasteGrow(bounded.Literal("ok"), bounded.NewBuffer(2))
	assert.Equal(t, "ok", string(buf.Freeze()))
	assert.Panics(t, func() { buf.Len() })
}

// Not parallel: replaces the package logger.
func TestPasteGrowLogsReallocation(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	bounded.SetLogger(zap.New(core))
	t.Cleanup(func() { bounded.SetLogger(nil) })

	buf := bounded.NewBuffer(2)
	buf = bounded.PasteGrow(bounded.Literal("ab"), buf)
	assert.Zero(t, logs.Len())

	bounded.PasteGrow(bounded.Literal("cde"), buf)
	entries := logs.FilterMessage("buffer grown").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 2, fields["from"])
	assert.EqualValues(t, 5, fields["to"])
}

func TestBufferReset(t *testing.T) {
	t.Parallel()
	buf := bounded.PasteGrow(bounded.Literal("abc"), bounded.NewBuffer(8))
	buf.Reset()
	assert.Equal(t, 0, buf.Len())
	assert.Equal(t, 8, buf.Cap())

	buf = bounded.PasteGrow(bounded.Literal("xy"), buf)
	assert.Equal(t, "xy", string(buf.Bytes()))

	frozen := buf.Freeze()
	assert.Equal(t, "xy", string(frozen))
	assert.Panics(t, buf.Reset)
}
