package toon

// arrayShape selects how an array is laid out.
type arrayShape int

const (
	shapeEmpty     arrayShape = iota // no elements
	shapePrimitive                   // scalars only, one inline line
	shapeTabular                     // uniform flat objects, header plus rows
	shapeMixed                       // anything else, one "- " item per element
)

func (s arrayShape) String() string {
	switch s {
	case shapeEmpty:
		return "empty"
	case shapePrimitive:
		return "primitive"
	case shapeTabular:
		return "tabular"
	default:
		return "mixed"
	}
}

func classify(arr Array) arrayShape {
	switch {
	case len(arr) == 0:
		return shapeEmpty
	case isPrimitiveArray(arr):
		return shapePrimitive
	case isTabular(arr):
		return shapeTabular
	default:
		return shapeMixed
	}
}

func isPrimitiveArray(arr Array) bool {
	for _, item := range arr {
		if !isScalar(item) {
			return false
		}
	}
	return true
}

// isTabular reports whether every element is a non-empty object with only
// scalar values and all elements share the same key set. Key order may differ
// between elements; rows follow the first element's order.
func isTabular(arr Array) bool {
	if len(arr) == 0 {
		return false
	}

	firstObj, ok := arr[0].(*Object)
	if !ok || firstObj.Len() == 0 {
		return false
	}

	for _, item := range arr {
		obj, ok := item.(*Object)
		if !ok || obj.Len() != firstObj.Len() {
			return false
		}

		for k, v := range obj.All() {
			if !isScalar(v) {
				return false
			}
			if _, found := firstObj.Get(k); !found {
				return false
			}
		}
	}

	return true
}
