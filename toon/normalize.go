package toon

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// FromGo converts a Go value into the value model.
//
// Maps are emitted with their keys sorted since Go maps carry no order.
// Struct fields keep their declaration order and follow the encoding/json
// field rules (see normalizeStruct). Times become RFC 3339 strings. Channels,
// functions and complex numbers are rejected with an *InputError.
func FromGo(v interface{}) (Value, error) {
	out, err := normalizeValue(v)
	if err != nil {
		var inputErr *InputError
		if errors.As(err, &inputErr) {
			return nil, err
		}
		return nil, &InputError{Offset: -1, Err: err}
	}
	return out, nil
}

func normalizeValue(v interface{}) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return val, nil
	case json.Number:
		return parseNumber(val.String())
	case time.Time:
		return String(val.Format(time.RFC3339Nano)), nil
	case json.RawMessage:
		if len(val) == 0 {
			return Null{}, nil
		}
		return ParseJSON(val)
	case json.Marshaler:
		if isNilPointer(v) {
			return Null{}, nil
		}
		jsonBytes, err := val.MarshalJSON()
		if err != nil {
			return nil, err
		}
		return ParseJSON(jsonBytes)
	case encoding.TextMarshaler:
		if isNilPointer(v) {
			return Null{}, nil
		}
		text, err := val.MarshalText()
		if err != nil {
			return nil, err
		}
		return String(text), nil
	}

	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface:
		if val.IsNil() {
			return Null{}, nil
		}
		return normalizeValue(val.Elem().Interface())
	case reflect.Bool:
		return Bool(val.Bool()), nil
	case reflect.String:
		return String(val.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := val.Uint()
		if u > math.MaxInt64 {
			return BigInt(strconv.FormatUint(u, 10)), nil
		}
		return Int(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Float(val.Float()), nil
	case reflect.Map:
		return normalizeMap(val)
	case reflect.Slice:
		if val.IsNil() {
			return Null{}, nil
		}
		return normalizeSlice(val)
	case reflect.Array:
		return normalizeSlice(val)
	case reflect.Struct:
		return normalizeStruct(val)
	default:
		return nil, fmt.Errorf("unsupported type: %T", v)
	}
}

func normalizeMap(val reflect.Value) (Value, error) {
	if val.IsNil() {
		return Null{}, nil
	}

	type entry struct {
		key   string
		value reflect.Value
	}
	entries := make([]entry, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: fmt.Sprintf("%v", iter.Key().Interface()), value: iter.Value()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	obj := NewObject()
	for _, e := range entries {
		normVal, err := normalizeValue(e.value.Interface())
		if err != nil {
			return nil, err
		}
		obj.Set(e.key, normVal)
	}
	return obj, nil
}

// normalizeStruct walks exported fields the way encoding/json selects them:
// json tag names, "-" to skip, omitempty and omitzero, and promotion of the
// fields of untagged embedded structs. A promoted field never replaces one
// the outer struct already set. Fields reached through an unexported
// embedded struct are skipped.
func normalizeStruct(val reflect.Value) (Value, error) {
	obj := NewObject()
	if err := addStructFields(obj, val, false); err != nil {
		return nil, err
	}
	return obj, nil
}

func addStructFields(obj *Object, val reflect.Value, promoted bool) error {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := parseFieldTag(field.Tag.Get("json"))
		if tag.skip {
			continue
		}

		fv := val.Field(i)
		if field.Anonymous && tag.name == "" {
			ft := field.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				if fv.Kind() == reflect.Ptr {
					if fv.IsNil() {
						continue
					}
					fv = fv.Elem()
				}
				if err := addStructFields(obj, fv, true); err != nil {
					return err
				}
				continue
			}
		}

		if !field.IsExported() || !fv.CanInterface() {
			continue
		}
		if (tag.omitEmpty && isEmptyValue(fv)) || (tag.omitZero && fv.IsZero()) {
			continue
		}

		name := tag.name
		if name == "" {
			name = field.Name
		}
		if promoted {
			if _, exists := obj.Get(name); exists {
				continue
			}
		}

		v, err := normalizeValue(fv.Interface())
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
		obj.Set(name, v)
	}
	return nil
}

type fieldTag struct {
	name      string
	omitEmpty bool
	omitZero  bool
	skip      bool
}

func parseFieldTag(tag string) fieldTag {
	if tag == "-" {
		return fieldTag{skip: true}
	}

	name, rest, _ := strings.Cut(tag, ",")
	ft := fieldTag{name: name}
	for rest != "" {
		var opt string
		opt, rest, _ = strings.Cut(rest, ",")
		switch opt {
		case "omitempty":
			ft.omitEmpty = true
		case "omitzero":
			ft.omitZero = true
		}
	}
	return ft
}

// isEmptyValue matches the omitempty definition of encoding/json.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Interface, reflect.Ptr:
		return v.IsZero()
	}
	return false
}

func normalizeSlice(val reflect.Value) (Value, error) {
	result := make(Array, val.Len())
	for i := 0; i < val.Len(); i++ {
		normVal, err := normalizeValue(val.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		result[i] = normVal
	}
	return result, nil
}

func isNilPointer(v interface{}) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
