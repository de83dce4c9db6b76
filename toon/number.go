package toon

import (
	"math"
	"strconv"
)

// normalizeNumber canonicalizes a number before formatting. NaN and the
// infinities become Null, negative zero becomes zero, and floats holding an
// integral value that fits in int64 become Int. Any other value is returned
// unchanged.
func normalizeNumber(v Value) Value {
	f, ok := v.(Float)
	if !ok {
		return v
	}

	x := float64(f)
	switch {
	case math.IsNaN(x), math.IsInf(x, 0):
		return Null{}
	case x == 0:
		return Int(0)
	case x == math.Trunc(x) && x >= math.MinInt64 && x < math.MaxInt64:
		return Int(int64(x))
	}
	return f
}

// formatFloat renders a finite float in plain decimal notation using the
// shortest representation that round-trips. Integral values outside the
// int64 range still render without a decimal point.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
