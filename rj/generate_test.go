package rj

import (
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty object", `{}`, "{}"},
		{"empty array", `[]`, "[]"},
		{"scalar string", `"hi"`, `"hi"`},
		{"scalar number", `10e3`, "10000"},
		{"null", `null`, "null"},
		{
			name:  "flat object",
			input: `{"a":1,"b":true}`,
			want:  "{\n  \"a\": 1,\n  \"b\": true\n}",
		},
		{
			name:  "nested",
			input: `{"a":{"b":[1,2]},"c":[]}`,
			want:  "{\n  \"a\": {\n    \"b\": [\n      1,\n      2\n    ]\n  },\n  \"c\": []\n}",
		},
		{
			name:  "array of scalars",
			input: `[1,"two",null]`,
			want:  "[\n  1,\n  \"two\",\n  null\n]",
		},
		{
			name:  "escapes survive",
			input: `"line\nbreak \"q\""`,
			want:  `"line\nbreak \"q\""`,
		},
		{
			name:  "whitespace normalized",
			input: "{ \"k\" :\n\t[ 1 , 2 ] }",
			want:  "{\n  \"k\": [\n    1,\n    2\n  ]\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.input)
			if err != nil {
				t.Fatalf("Format(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatInvalidInput(t *testing.T) {
	if _, err := Format(`{"key"`); err == nil {
		t.Error("expected error for invalid input")
	}
}

func TestFormatIdempotent(t *testing.T) {
	input := `{"Image":{"Width":800,"IDs":[116,943],"Animated":false}}`
	once, err := Format(input)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Format(once)
	if err != nil {
		t.Fatalf("formatted output did not re-parse: %v", err)
	}
	if once != twice {
		t.Errorf("format not idempotent:\n%s\nvs\n%s", once, twice)
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null{}, "null"},
		{"bool", Boolean(true), "true"},
		{"number", Number(-122.3959), "-122.3959"},
		{"integral number", Number(800), "800"},
		{"string", String("a\"b"), `"a\"b"`},
		{"control char", String("a\x01b"), `"a\u0001b"`},
		{"array", Array{Number(116), Number(943)}, "[116,943]"},
		{
			name: "object",
			v: Object{
				{Key: "a", Value: Number(1)},
				{Key: "b", Value: Array{}},
			},
			want: `{"a":1,"b":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stringify(tt.v); got != tt.want {
				t.Errorf("Stringify = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringifyRoundTrip(t *testing.T) {
	input := `{"Image":{"Width":800,"Title":"View from 15th Floor","IDs":[116,943,234,38793],"Animated":false}}`
	v, err := Parse(input)
	if err != nil {
		t.Fatal(err)
	}
	if got := Stringify(v); got != input {
		t.Errorf("round trip mismatch:\n got %s\nwant %s", got, input)
	}
}
