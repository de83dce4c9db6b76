package toon

import (
	"strconv"
	"strings"
)

// encoder walks a value tree and produces indented lines. Every method
// returns freshly allocated lines that the caller appends to its own.
type encoder struct {
	opts        EncodeOptions
	indentCache []string
}

func newEncoder(opts EncodeOptions) *encoder {
	return &encoder{opts: opts}
}

// encode renders a root value. An empty root object yields no lines, a root
// array starts directly with its header and a scalar is a single line.
func (e *encoder) encode(v Value) []string {
	switch val := v.(type) {
	case *Object:
		return e.encodeObject(val, 0)
	case Array:
		return e.encodeArray("", val, 1)
	default:
		return []string{e.formatScalar(v)}
	}
}

func (e *encoder) getIndent(depth int) string {
	needed := depth + 1
	for len(e.indentCache) < needed {
		level := len(e.indentCache)
		e.indentCache = append(e.indentCache, strings.Repeat(" ", level*e.opts.Indent))
	}
	return e.indentCache[depth]
}

// formatHeader renders the bracketed length header shared by every array
// layout, e.g. [3], [#3] or [3|].
func formatHeader(length int, lengthMarker bool, delimiter string) string {
	var b strings.Builder
	b.WriteByte('[')
	if lengthMarker {
		b.WriteByte('#')
	}
	b.WriteString(strconv.Itoa(length))
	if delimiter == DelimiterTab || delimiter == DelimiterPipe {
		b.WriteString(delimiter)
	}
	b.WriteByte(']')
	return b.String()
}

func (e *encoder) header(length int) string {
	return formatHeader(length, e.opts.LengthMarker, e.opts.Delimiter)
}

func (e *encoder) formatScalar(v Value) string {
	switch val := normalizeNumber(v).(type) {
	case Null:
		return "null"
	case Bool:
		return strconv.FormatBool(bool(val))
	case Int:
		return strconv.FormatInt(int64(val), 10)
	case BigInt:
		return string(val)
	case Float:
		return formatFloat(float64(val))
	case String:
		return quoteValue(string(val), e.opts.Delimiter)
	default:
		// Containers never reach here; nil interfaces read as null.
		return "null"
	}
}

func (e *encoder) encodeObject(obj *Object, depth int) []string {
	lines := make([]string, 0, obj.Len())
	for key, value := range obj.All() {
		lines = append(lines, e.encodeField(key, value, depth)...)
	}
	return lines
}

// encodeField renders one key of an object at depth.
func (e *encoder) encodeField(key string, value Value, depth int) []string {
	indent := e.getIndent(depth)
	encodedKey := quoteKey(key)

	switch v := value.(type) {
	case *Object:
		lines := []string{indent + encodedKey + ":"}
		if v.Len() > 0 {
			lines = append(lines, e.encodeObject(v, depth+1)...)
		}
		return lines
	case Array:
		return e.encodeArray(indent+encodedKey, v, depth+1)
	default:
		return []string{indent + encodedKey + ": " + e.formatScalar(value)}
	}
}

// encodeArray renders arr with its header line starting with prefix (the
// indentation, list marker and key that precede the brackets). Tabular rows
// and list items are placed at bodyDepth.
func (e *encoder) encodeArray(prefix string, arr Array, bodyDepth int) []string {
	header := prefix + e.header(len(arr))

	switch classify(arr) {
	case shapeEmpty:
		return []string{header + ":"}
	case shapePrimitive:
		return []string{header + ": " + e.joinScalars(arr)}
	case shapeTabular:
		return e.encodeTabular(header, arr, bodyDepth)
	default:
		lines := []string{header + ":"}
		return append(lines, e.encodeListItems(arr, bodyDepth)...)
	}
}

func (e *encoder) joinScalars(arr Array) string {
	values := make([]string, len(arr))
	for i, item := range arr {
		values[i] = e.formatScalar(item)
	}
	return strings.Join(values, e.opts.Delimiter)
}

func (e *encoder) encodeTabular(header string, arr Array, rowDepth int) []string {
	fields := arr[0].(*Object).Keys()

	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = quoteField(field, e.opts.Delimiter)
	}

	lines := make([]string, 0, len(arr)+1)
	lines = append(lines, header+"{"+strings.Join(columns, e.opts.Delimiter)+"}:")

	indent := e.getIndent(rowDepth)
	cells := make([]string, len(fields))
	for _, item := range arr {
		obj := item.(*Object)
		for i, field := range fields {
			v, _ := obj.Get(field)
			cells[i] = e.formatScalar(v)
		}
		lines = append(lines, indent+strings.Join(cells, e.opts.Delimiter))
	}
	return lines
}

// encodeListItems renders each element of a mixed array as a "- " item at depth.
func (e *encoder) encodeListItems(arr Array, depth int) []string {
	indent := e.getIndent(depth)
	lines := make([]string, 0, len(arr))

	for _, item := range arr {
		switch v := item.(type) {
		case *Object:
			lines = append(lines, e.encodeObjectItem(v, depth)...)
		case Array:
			switch classify(v) {
			case shapeEmpty, shapePrimitive:
				lines = append(lines, e.encodeArray(indent+"- ", v, depth+1)...)
			default:
				// Nested arrays of containers always use the list layout, two
				// levels deeper so they stand apart from sibling keys.
				lines = append(lines, indent+"- "+e.header(len(v))+":")
				lines = append(lines, e.encodeListItems(v, depth+2)...)
			}
		default:
			lines = append(lines, indent+"- "+e.formatScalar(item))
		}
	}
	return lines
}

// encodeObjectItem renders an object list item. The first key shares the
// "- " line; the remaining keys follow one level deeper. An empty object is a
// bare "-" with no trailing space.
func (e *encoder) encodeObjectItem(obj *Object, depth int) []string {
	indent := e.getIndent(depth)

	firstKey, firstValue, ok := obj.first()
	if !ok {
		return []string{indent + "-"}
	}

	marker := indent + "- " + quoteKey(firstKey)
	var lines []string

	switch fv := firstValue.(type) {
	case *Object:
		lines = append(lines, marker+":")
		if fv.Len() > 0 {
			lines = append(lines, e.encodeObject(fv, depth+2)...)
		}
	case Array:
		bodyDepth := depth + 1
		if classify(fv) == shapeMixed {
			bodyDepth = depth + 2
		}
		lines = append(lines, e.encodeArray(marker, fv, bodyDepth)...)
	default:
		lines = append(lines, marker+": "+e.formatScalar(firstValue))
	}

	skip := true
	for key, value := range obj.All() {
		if skip {
			skip = false
			continue
		}
		lines = append(lines, e.encodeField(key, value, depth+1)...)
	}
	return lines
}
