package toon

import (
	"math"
	"testing"
)

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    Value
		expected Value
	}{
		{"NaN", Float(math.NaN()), Null{}},
		{"Infinity", Float(math.Inf(1)), Null{}},
		{"Negative Infinity", Float(math.Inf(-1)), Null{}},
		{"Negative Zero", Float(math.Copysign(0, -1)), Int(0)},
		{"Integral Float", Float(1.0), Int(1)},
		{"Negative Integral Float", Float(-42.0), Int(-42)},
		{"Fraction", Float(2.5), Float(2.5)},
		{"Int", Int(7), Int(7)},
		{"Beyond int64", Float(1e20), Float(1e20)},
		{"String", String("1.0"), String("1.0")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeNumber(tt.input); got != tt.expected {
				t.Errorf("normalizeNumber(%v) = %#v, want %#v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatNumbers(t *testing.T) {
	tests := []struct {
		name     string
		input    Value
		expected string
	}{
		{"one", Float(1.0), "1"},
		{"negative zero", Float(math.Copysign(0, -1)), "0"},
		{"pi", Float(3.14159), "3.14159"},
		{"shortest round trip", Float(0.30000000000000004), "0.30000000000000004"},
		{"large integral", Float(1e20), "100000000000000000000"},
		{"small", Float(1e-7), "0.0000001"},
		{"max int", Int(math.MaxInt64), "9223372036854775807"},
		{"min int", Int(math.MinInt64), "-9223372036854775808"},
		{"NaN", Float(math.NaN()), "null"},
	}

	e := newEncoder(*DefaultEncodeOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.formatScalar(tt.input); got != tt.expected {
				t.Errorf("formatScalar(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
