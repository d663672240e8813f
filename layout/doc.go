// Package layout compiles declarative record layouts into bounded builders.
//
// A layout is an ordered list of fields. Each field is a named value with
// an encoding from the [bounded] package, a constant literal, or a union
// of encodings whose arm is chosen per record. The record bound is the sum
// of the field bounds, union fields counting their widest arm, so every
// record can be pasted without a second allocation.
//
// # Configuration
//
// Layouts are usually written in YAML and loaded with [Parse] or [Load]:
//
//	name: access
//	fields:
//	  - name: status
//	    encoding: word16_dec
//	  - literal: " "
//	  - name: elapsed
//	    union: [word32_dec, double_dec]
//
// [Encodings] lists the accepted encoding names. Integer fields accept any
// Go integer (or an integral float64, as YAML and JSON decoders produce)
// that fits the encoding's width; char and ascii fields accept a rune or a
// one-rune string.
//
// # Encoding
//
//	l, err := layout.Parse(cfg)
//	out, err := l.Encode(200, layout.Variant{Arm: 1, Value: 0.25})
//
// [Layout.AppendTo] pastes into a [bounded.Buffer], and [Layout.WriteIter]
// and [Layout.WriteChan] stream many records into an [io.Writer].
// [Layout.Describe] prints the field table.
//
// # Errors
//
//   - [ErrInvalidLayout]: malformed configuration
//   - [ErrUnknownEncoding]: encoding name not in the registry
//   - [ErrFieldCount]: wrong number of record values
//   - [ErrValueType]: a value does not fit its field
package layout
