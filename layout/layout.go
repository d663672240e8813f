package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bjaus/bounded"
	"go.uber.org/zap"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidLayout   = errors.New("invalid layout")
	ErrUnknownEncoding = errors.New("unknown encoding")
	ErrFieldCount      = errors.New("wrong number of values")
	ErrValueType       = errors.New("value does not fit encoding")
)

// Variant selects one arm of a union field.
type Variant struct {
	Arm   int
	Value any
}

// Field describes a compiled field.
type Field struct {
	// Name is empty for literal fields.
	Name string
	// Encoding is the registry name, `literal "..."` or `union(a|b)`.
	Encoding string
	// Bound is the most bytes the field writes.
	Bound int
	// Offset is the most bytes the preceding fields write.
	Offset int
}

type field struct {
	Field
	literal bounded.Builder
	enc     *encoder
	arms    []encoder
}

// Layout is a compiled record layout. It is immutable and safe for
// concurrent use.
type Layout struct {
	name   string
	fields []field
	inputs int
	bound  int
}

// New compiles cfg.
func New(cfg Config) (*Layout, error) {
	l := &Layout{name: cfg.Name}
	seen := make(map[string]bool, len(cfg.Fields))
	for i, fc := range cfg.Fields {
		f, err := compileField(i, fc)
		if err != nil {
			return nil, err
		}
		if f.Name != "" {
			if seen[f.Name] {
				return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidLayout, f.Name)
			}
			seen[f.Name] = true
		}
		if fc.Literal == nil {
			l.inputs++
		}
		f.Offset = l.bound
		l.bound += f.Bound
		l.fields = append(l.fields, f)
	}
	if ce := bounded.Logger().Check(zap.DebugLevel, "layout compiled"); ce != nil {
		ce.Write(zap.String("name", l.name), zap.Int("fields", len(l.fields)), zap.Int("bound", l.bound))
	}
	return l, nil
}

func compileField(i int, fc FieldConfig) (field, error) {
	set := 0
	if fc.Encoding != "" {
		set++
	}
	if fc.Literal != nil {
		set++
	}
	if len(fc.Union) > 0 {
		set++
	}
	if set != 1 {
		return field{}, fmt.Errorf("%w: field %d must set exactly one of encoding, literal, union", ErrInvalidLayout, i)
	}

	switch {
	case fc.Literal != nil:
		if fc.Name != "" {
			return field{}, fmt.Errorf("%w: literal field %d must not be named", ErrInvalidLayout, i)
		}
		lit := bounded.Literal(*fc.Literal)
		return field{
			Field:   Field{Encoding: "literal " + strconv.Quote(*fc.Literal), Bound: lit.Bound()},
			literal: lit,
		}, nil
	case fc.Name == "":
		return field{}, fmt.Errorf("%w: field %d needs a name", ErrInvalidLayout, i)
	case fc.Encoding != "":
		enc, err := lookup(fc.Name, fc.Encoding)
		if err != nil {
			return field{}, err
		}
		return field{
			Field: Field{Name: fc.Name, Encoding: fc.Encoding, Bound: enc.bound},
			enc:   &enc,
		}, nil
	default:
		f := field{
			Field: Field{Name: fc.Name, Encoding: "union(" + strings.Join(fc.Union, "|") + ")"},
			arms:  make([]encoder, len(fc.Union)),
		}
		for j, name := range fc.Union {
			enc, err := lookup(fc.Name, name)
			if err != nil {
				return field{}, err
			}
			f.arms[j] = enc
			f.Bound = max(f.Bound, enc.bound)
		}
		return f, nil
	}
}

func lookup(field, name string) (encoder, error) {
	enc, ok := encodings[name]
	if !ok {
		return encoder{}, fmt.Errorf("%w: %q in field %q", ErrUnknownEncoding, name, field)
	}
	return enc, nil
}

// Name returns the layout name from its configuration.
func (l *Layout) Name() string { return l.name }

// Bound returns the most bytes one record can take.
func (l *Layout) Bound() int { return l.bound }

// Fields returns the compiled fields in order, literals included.
func (l *Layout) Fields() []Field {
	out := make([]Field, len(l.fields))
	for i, f := range l.fields {
		out[i] = f.Field
	}
	return out
}

// Builder returns the builder for one record. values holds one entry per
// non-literal field in order; union fields take a [Variant]. The builder's
// bound is always l.Bound().
func (l *Layout) Builder(values ...any) (bounded.Builder, error) {
	if len(values) != l.inputs {
		return bounded.Builder{}, fmt.Errorf("%w: layout %q takes %d, got %d", ErrFieldCount, l.name, l.inputs, len(values))
	}
	b := bounded.Empty()
	next := 0
	for _, f := range l.fields {
		if f.enc == nil && f.arms == nil {
			b = bounded.Append(b, f.literal)
			continue
		}
		fb, err := f.encode(values[next])
		if err != nil {
			return bounded.Builder{}, err
		}
		next++
		b = bounded.Append(b, fb)
	}
	return bounded.Substitute(bounded.MustEQ(b.Bound(), l.bound), b), nil
}

func (f field) encode(value any) (bounded.Builder, error) {
	if f.enc != nil {
		return f.enc.encode(f.Name, value)
	}
	v, ok := value.(Variant)
	if !ok {
		return bounded.Builder{}, fmt.Errorf("%w: union field %q wants layout.Variant, got %T", ErrValueType, f.Name, value)
	}
	if v.Arm < 0 || v.Arm >= len(f.arms) {
		return bounded.Builder{}, fmt.Errorf("%w: union field %q has no arm %d", ErrValueType, f.Name, v.Arm)
	}
	b, err := f.arms[v.Arm].encode(f.Name, v.Value)
	if err != nil {
		return bounded.Builder{}, err
	}
	return bounded.Weaken(bounded.MustLE(b.Bound(), f.Bound), b), nil
}

// Encode returns one record as a fresh byte slice.
func (l *Layout) Encode(values ...any) ([]byte, error) {
	b, err := l.Builder(values...)
	if err != nil {
		return nil, err
	}
	return bounded.Run(b), nil
}

// AppendTo appends one record to buf and returns the buffer to use from
// then on. On error buf is returned untouched and remains valid.
func (l *Layout) AppendTo(buf *bounded.Buffer, values ...any) (*bounded.Buffer, error) {
	b, err := l.Builder(values...)
	if err != nil {
		return buf, err
	}
	return bounded.PasteGrow(b, buf), nil
}
