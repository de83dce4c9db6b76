// Package toon implements an encoder for the TOON (Token-Oriented Object Notation) format.
// TOON is a line-oriented, indentation-based text format that encodes the JSON data model
// with explicit structure and minimal quoting. Arrays of uniform flat objects collapse into
// a column header followed by one delimited row per element.
//
// Encoding is a pure function of the value and the options: it either returns the
// complete text or fails before producing any output.
package toon

import (
	"io"
	"strings"
)

// Encode converts a Go value to TOON format.
func Encode(v interface{}) (string, error) {
	return EncodeWithOptions(v, nil)
}

// EncodeWithOptions converts a Go value to TOON format with custom options.
// A nil opts uses DefaultEncodeOptions. Invalid options are reported as a
// *ConfigError before the value is inspected.
func EncodeWithOptions(v interface{}, opts *EncodeOptions) (string, error) {
	resolved, err := opts.resolve()
	if err != nil {
		return "", err
	}

	normalized, err := FromGo(v)
	if err != nil {
		return "", err
	}
	return encodeValue(normalized, resolved), nil
}

// EncodeJSON parses JSON text, preserving object key order, and converts it
// to TOON format.
func EncodeJSON(data []byte, opts *EncodeOptions) (string, error) {
	resolved, err := opts.resolve()
	if err != nil {
		return "", err
	}

	v, err := ParseJSON(data)
	if err != nil {
		return "", err
	}
	return encodeValue(v, resolved), nil
}

// Marshal returns the TOON encoding of v.
func Marshal(v interface{}, opts ...Option) ([]byte, error) {
	s, err := EncodeWithOptions(v, applyOptions(opts))
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func encodeValue(v Value, opts EncodeOptions) string {
	return strings.Join(newEncoder(opts).encode(v), "\n")
}

// Encoder writes TOON documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts *EncodeOptions
}

// NewEncoder returns an encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: applyOptions(opts)}
}

// Encode writes the complete encoding of v. Nothing is written when encoding fails.
func (enc *Encoder) Encode(v interface{}) error {
	s, err := EncodeWithOptions(v, enc.opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(enc.w, s)
	return err
}
