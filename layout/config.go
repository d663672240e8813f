package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config describes a record layout. It is usually decoded from YAML:
//
//	name: access
//	fields:
//	  - name: status
//	    encoding: word16_dec
//	  - literal: " "
//	  - name: elapsed
//	    union: [word32_dec, double_dec]
type Config struct {
	Name   string        `yaml:"name"`
	Fields []FieldConfig `yaml:"fields"`
}

// FieldConfig describes one field. Exactly one of Encoding, Literal and
// Union must be set. Literal fields take no value.
type FieldConfig struct {
	Name     string   `yaml:"name,omitempty"`
	Encoding string   `yaml:"encoding,omitempty"`
	Literal  *string  `yaml:"literal,omitempty"`
	Union    []string `yaml:"union,omitempty"`
}

// Parse decodes a YAML layout and compiles it. Unknown keys are rejected.
func Parse(data []byte) (*Layout, error) {
	return Load(bytes.NewReader(data))
}

// Load reads a YAML layout from r and compiles it.
func Load(r io.Reader) (*Layout, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidLayout)
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidLayout, err)
	}
	return New(cfg)
}

// Marshal encodes cfg as YAML.
func (cfg Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
