package engine

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/rjkit/jsonpad/errors"
)

func TestNativeParse(t *testing.T) {
	ctx := context.Background()
	eng := NewNative()

	out, err := eng.Parse(ctx, `{"key": "value"}`)
	if err != nil {
		t.Fatal(err)
	}
	want := "Object{\n  \"key\": String(\"value\"),\n}"
	if out != want {
		t.Errorf("Parse = %q, want %q", out, want)
	}
}

func TestNativeFormat(t *testing.T) {
	ctx := context.Background()
	eng := NewNative()

	out, err := eng.Format(ctx, `{"a":1}`)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": 1\n}"
	if out != want {
		t.Errorf("Format = %q, want %q", out, want)
	}
}

func TestNativeInvalidInput(t *testing.T) {
	ctx := context.Background()
	eng := NewNative()

	_, err := eng.Parse(ctx, "struct Foo")
	if !stderrors.Is(err, errors.UnexpectedToken("")) {
		t.Errorf("Parse error = %v, want unexpected_token", err)
	}
	if !strings.Contains(err.Error(), "struct Foo") {
		t.Errorf("error should carry the offending input: %v", err)
	}

	if _, err := eng.Format(ctx, "struct Foo"); err == nil {
		t.Error("Format should fail on invalid input")
	}
}

func TestNativeDeterministic(t *testing.T) {
	ctx := context.Background()
	eng := NewNative()

	for _, input := range []string{`{"a": [1, 2]}`, `not json`, ""} {
		a1, e1 := eng.Parse(ctx, input)
		a2, e2 := eng.Parse(ctx, input)
		if a1 != a2 || (e1 == nil) != (e2 == nil) {
			t.Errorf("Parse(%q) not deterministic", input)
		}
		if e1 != nil && e2 != nil && e1.Error() != e2.Error() {
			t.Errorf("Parse(%q) errors differ: %v vs %v", input, e1, e2)
		}
	}
}

func TestNativeClose(t *testing.T) {
	ctx := context.Background()
	eng := NewNative()
	if err := eng.Close(ctx); err != nil {
		t.Fatal(err)
	}
	// a native engine keeps working after Close; it holds no resources
	if _, err := eng.Format(ctx, "[]"); err != nil {
		t.Errorf("Format after Close: %v", err)
	}
}
