package editor

import (
	"context"
	"strings"
	"testing"

	"github.com/rjkit/jsonpad/engine"
)

// End-to-end against the real native engine.

func TestEndToEndStructFoo(t *testing.T) {
	ctx := context.Background()
	eng := engine.NewNative()
	sess := NewSession(eng)

	st := sess.SetInput(ctx, NewState(), "struct Foo")

	direct, err := eng.Parse(ctx, "struct Foo")
	if err == nil {
		// engine accepted it: the output must equal the direct result
		if st.Last.Failed() || st.Last.Text() != direct {
			t.Errorf("displayed %+v, direct %q", st.Last, direct)
		}
		return
	}
	// engine rejected it: the same output field shows the message
	if !st.Last.Failed() {
		t.Fatal("expected failure result")
	}
	if st.Last.Text() != err.Error() {
		t.Errorf("displayed %q, want %q", st.Last.Text(), err.Error())
	}
	if !strings.Contains(st.Last.Text(), "struct Foo") {
		t.Errorf("message should name the offending input: %q", st.Last.Text())
	}
}

func TestEndToEndLiveTyping(t *testing.T) {
	ctx := context.Background()
	sess := NewSession(engine.NewNative())

	// keystroke by keystroke toward valid JSON; intermediate states
	// fail, the final one succeeds, and the session never stalls
	st := NewState()
	input := `{"a": 1}`
	for i := 1; i <= len(input); i++ {
		st = sess.SetInput(ctx, st, input[:i])
	}

	if st.Last.Failed() {
		t.Fatalf("final input should parse: %q", st.Last.Text())
	}
	want := "Object{\n  \"a\": Number(1.0),\n}"
	if st.Last.Text() != want {
		t.Errorf("parse dump = %q, want %q", st.Last.Text(), want)
	}

	st = sess.SetMode(ctx, st, ModeFormat)
	if st.Last.Failed() {
		t.Fatalf("format failed: %q", st.Last.Text())
	}
	if st.Last.Text() != "{\n  \"a\": 1\n}" {
		t.Errorf("format = %q", st.Last.Text())
	}
}

func TestEndToEndEmptyInput(t *testing.T) {
	ctx := context.Background()
	sess := NewSession(engine.NewNative())

	st := sess.SetInput(ctx, NewState(), "")
	if !st.Last.Failed() {
		t.Errorf("native engine rejects empty input, got %+v", st.Last)
	}

	st = sess.SetMode(ctx, st, ModeFormat)
	if !st.Last.Failed() {
		t.Errorf("format of empty input should fail, got %+v", st.Last)
	}

	// still fully interactive
	st = sess.SetInput(ctx, st, "[]")
	if st.Last.Failed() || st.Last.Text() != "[]" {
		t.Errorf("session disrupted after empty input: %+v", st.Last)
	}
}
