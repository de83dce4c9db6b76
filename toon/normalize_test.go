package toon

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"net"
	"testing"
	"time"
)

type SearchResult struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Score       float64                `json:"score"`
	InputSchema map[string]interface{} `json:"inputSchema,omitempty"`
}

func TestFromGoStructKeepsFieldOrder(t *testing.T) {
	results := []SearchResult{
		{Name: "calculator", Description: "A simple calculator", Score: 1.0},
		{Name: "search", Description: "Find things", Score: 0.75},
	}

	encoded, err := Encode(results)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	expected := "[2]{name,description,score}:\n  calculator,A simple calculator,1\n  search,Find things,0.75"
	if encoded != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, encoded)
	}
}

func TestFromGoNestedSchema(t *testing.T) {
	result := SearchResult{
		Name:  "calculator",
		Score: 1.0,
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"a": map[string]interface{}{
					"type":        "number",
					"description": "The first number",
				},
			},
		},
	}

	encoded, err := Encode(result)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	expected := "name: calculator\n" +
		"description: \"\"\n" +
		"score: 1\n" +
		"inputSchema:\n" +
		"  properties:\n" +
		"    a:\n" +
		"      description: The first number\n" +
		"      type: number\n" +
		"  type: object"
	if encoded != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, encoded)
	}
}

type reading struct {
	Sensor string  `json:"sensor"`
	Value  float64 `json:"value"`
}

func TestFromGoStructNonFiniteFloats(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"NaN field", reading{Sensor: "t1", Value: math.NaN()}, "sensor: t1\nvalue: null"},
		{"pointer to struct", &reading{Sensor: "t1", Value: math.Inf(-1)}, "sensor: t1\nvalue: null"},
		{"struct in map", map[string]interface{}{"s": reading{Sensor: "t1", Value: math.Inf(1)}}, "s:\n  sensor: t1\n  value: null"},
		{"structs in slice", []reading{{"a", 1.5}, {"b", math.NaN()}}, "[2]{sensor,value}:\n  a,1.5\n  b,null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := Encode(tt.input)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if encoded != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, encoded)
			}
		})
	}
}

type Base struct {
	ID   int    `json:"id"`
	Kind string `json:"kind"`
}

type Audit struct {
	By string `json:"by"`
}

type taggedRecord struct {
	Base
	*Audit
	Kind    string    `json:"kind"`
	Name    string    `json:"name,omitempty"`
	Secret  string    `json:"-"`
	Count   int       `json:",omitempty"`
	Updated time.Time `json:"updated,omitzero"`
	Labels  []string  `json:"labels"`
	Plain   bool
	note    string
}

func TestFromGoStructTags(t *testing.T) {
	record := taggedRecord{
		Base:   Base{ID: 7, Kind: "inner"},
		Kind:   "outer",
		Secret: "hidden",
		Labels: []string{"a", "b"},
		note:   "unexported",
	}

	encoded, err := Encode(record)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	expected := "id: 7\nkind: outer\nlabels[2]: a,b\nPlain: false"
	if encoded != expected {
		t.Errorf("Expected %q, got %q", expected, encoded)
	}

	record.Audit = &Audit{By: "ops"}
	record.Count = 3
	encoded, err = Encode(record)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	expected = "id: 7\nkind: outer\nby: ops\nCount: 3\nlabels[2]: a,b\nPlain: false"
	if encoded != expected {
		t.Errorf("Expected %q, got %q", expected, encoded)
	}
}

func TestFromGoMapsAreSorted(t *testing.T) {
	encoded, err := Encode(map[string]int{"b": 2, "c": 3, "a": 1})
	if err != nil {
		t.Fatal(err)
	}
	if encoded != "a: 1\nb: 2\nc: 3" {
		t.Errorf("Unexpected output %q", encoded)
	}
}

func TestFromGoScalars(t *testing.T) {
	when := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	var nilPtr *SearchResult
	var nilMap map[string]int
	var nilSlice []int

	tests := []struct {
		name     string
		input    interface{}
		expected Value
	}{
		{"nil", nil, Null{}},
		{"nil pointer", nilPtr, Null{}},
		{"nil map", nilMap, Null{}},
		{"nil slice", nilSlice, Null{}},
		{"int8", int8(-3), Int(-3)},
		{"uint32", uint32(7), Int(7)},
		{"huge uint", uint64(math.MaxUint64), BigInt("18446744073709551615")},
		{"big.Int", new(big.Int).Lsh(big.NewInt(1), 100), BigInt("1267650600228229401496703205376")},
		{"json number beyond int64", json.Number("99999999999999999999"), BigInt("99999999999999999999")},
		{"float32", float32(0.5), Float(0.5)},
		{"json number int", json.Number("12"), Int(12)},
		{"json number float", json.Number("1.5"), Float(1.5)},
		{"time", when, String("2024-03-01T12:30:00Z")},
		{"text marshaler", net.ParseIP("10.0.0.1"), String("10.0.0.1")},
		{"pointer to string", func() *string { s := "x"; return &s }(), String("x")},
		{"value passthrough", Int(5), Int(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromGo(tt.input)
			if err != nil {
				t.Fatalf("FromGo failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("FromGo(%v) = %#v, want %#v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFromGoTimeIsQuotedWhenNeeded(t *testing.T) {
	when := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	encoded, err := Encode(map[string]interface{}{"at": when})
	if err != nil {
		t.Fatal(err)
	}
	if encoded != `at: "2024-03-01T12:30:00Z"` {
		t.Errorf("Unexpected output %q", encoded)
	}
}

func TestFromGoUnsupported(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
	}{
		{"channel", make(chan int)},
		{"function", func() {}},
		{"complex", complex(1, 2)},
		{"nested channel", map[string]interface{}{"c": make(chan int)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromGo(tt.input)
			var inputErr *InputError
			if !errors.As(err, &inputErr) {
				t.Errorf("Expected *InputError, got %v", err)
			}
		})
	}
}
