package toon

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Value is a node of the JSON data model consumed by the encoder.
//
// The set of implementations is closed: Null, Bool, Int, BigInt, Float,
// String, Array and *Object. Int, BigInt and Float together form the number
// kind and keep the distinction the source text made between integer and
// fractional literals.
type Value interface {
	value()
}

// Null is the JSON null.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Int is an integral JSON number.
type Int int64

// BigInt is an integer literal outside the int64 range, held as its
// canonical decimal digits so it prints without loss.
type BigInt string

// Float is a JSON number written with a fraction or exponent.
type Float float64

// String is a JSON string.
type String string

// Array is an ordered sequence of values.
type Array []Value

// Object maps string keys to values and remembers insertion order.
// The zero value is an empty object ready for use; a nil *Object reads as empty.
type Object struct {
	fields *orderedmap.OrderedMap[string, Value]
}

func (Null) value()    {}
func (Bool) value()    {}
func (Int) value()     {}
func (BigInt) value()  {}
func (Float) value()   {}
func (String) value()  {}
func (Array) value()   {}
func (*Object) value() {}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{fields: orderedmap.New[string, Value]()}
}

// Set stores v under key. Setting an existing key replaces its value but
// keeps the key at its original position.
func (o *Object) Set(key string, v Value) *Object {
	if o.fields == nil {
		o.fields = orderedmap.New[string, Value]()
	}
	if v == nil {
		v = Null{}
	}
	o.fields.Set(key, v)
	return o
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil || o.fields == nil {
		return nil, false
	}
	return o.fields.Get(key)
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil || o.fields == nil {
		return 0
	}
	return o.fields.Len()
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	for k := range o.All() {
		keys = append(keys, k)
	}
	return keys
}

// All iterates over the key/value pairs in insertion order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil || o.fields == nil {
			return
		}
		for pair := o.fields.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// first returns the first key/value pair; ok is false for an empty object.
func (o *Object) first() (key string, v Value, ok bool) {
	for k, val := range o.All() {
		return k, val, true
	}
	return "", nil, false
}

func isScalar(v Value) bool {
	switch v.(type) {
	case *Object, Array:
		return false
	default:
		return true
	}
}
