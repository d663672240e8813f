// Package bounded builds byte strings from small encoders whose worst-case
// output size is known before any memory is touched.
//
// A [Builder] writes at most [Builder.Bound] bytes. Builders compose with
// [Append] and [Concat], and the bound of the composition is the sum of the
// parts, so the destination can be sized once:
//
//	b := bounded.Concat(
//		bounded.Word16Dec(status),
//		bounded.ASCII(' '),
//		bounded.Word32PaddedLowerHex(id),
//	)
//	out := bounded.Run(b) // allocates b.Bound() bytes, returns the written prefix
//
// # Bounds
//
// Every encoder has a fixed bound that does not depend on the value: 3 for
// [Word8Dec], 20 for [Int64Dec], 32 for [DoubleDec]. When arms of a branch
// have different bounds, [Weaken] lifts the smaller one using an [LE]
// certificate:
//
//	var b bounded.Builder
//	if ok {
//		b = bounded.Weaken(bounded.MustLE(3, 5), bounded.Word8Dec(n))
//	} else {
//		b = bounded.Word16Dec(m)
//	}
//
// [Substitute] relabels with an [EQ] certificate. Neither changes the
// bytes written. A certificate that does not hold, or one applied to a
// builder of a different bound, is a programming error: the Must functions
// and the relabelers panic with an error wrapping [ErrBound].
//
// # Buffers
//
// [Run] allocates a fresh slice. [PasteGrow] appends to a [Buffer],
// reallocating to exactly the required size when the remaining room is
// smaller than the bound. The Buffer passed in is consumed; keep only the
// returned one:
//
//	buf := bounded.NewBuffer(64)
//	for _, r := range records {
//		buf = bounded.PasteGrow(encode(r), buf)
//	}
//	out := buf.Freeze()
//
// # Encoders
//
//   - Decimal: [Word8Dec] … [Word64Dec], [WordDec], [Int8Dec] … [Int64Dec], [IntDec]
//   - Fixed-width decimal: [WordPaddedDec2], [WordPaddedDec4], [WordPaddedDec9]
//   - Hexadecimal: Word{8,16}[Padded]{Upper,Lower}Hex and
//     Word{12,32,48,64,128,256}Padded{Upper,Lower}Hex
//   - Text: [ASCII], [Char], [Literal], [Bytes]
//   - Binary: Word{16,32,64,128}{BE,LE}, Int{16,32,64}{BE,LE}, [Word8], [Int8]
//   - Variable-length: [Word32LEB128], [Word64LEB128], [Int32SLEB128], [Int64SLEB128]
//   - Floating point: [DoubleDec]
//
// The padded decimal encoders and [ASCII] have unchecked preconditions;
// inputs outside them produce unspecified bytes within the bound, never a
// panic.
//
// # Verification
//
// [Check] runs a builder inside canary-guarded scratch space and reports
// any write outside its bound. Building with the boundeddebug tag also
// verifies the advance of every executed builder.
//
// # Layouts
//
// Package [github.com/bjaus/bounded/layout] compiles record layouts written
// in YAML into builders over these encoders.
//
// # Logging
//
// The package logs buffer reallocations at debug level through a
// [go.uber.org/zap] logger. It is a no-op until [SetLogger] is called.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrBound]: a certificate does not hold or a builder exceeded its bound
//   - [ErrConsumed]: a consumed [Buffer] was used
package bounded
