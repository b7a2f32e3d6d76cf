package engine

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/rjkit/jsonpad/errors"
)

// emptyModule is a valid wasm binary with no sections: magic + version.
var emptyModule = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func TestLoadWazeroInvalidBinary(t *testing.T) {
	ctx := context.Background()

	_, err := LoadWazero(ctx, []byte("not wasm"))
	if err == nil {
		t.Fatal("expected error for invalid binary")
	}
	if !stderrors.Is(err, errors.Load("", nil)) {
		t.Errorf("got %v, want load error", err)
	}
}

func TestLoadWazeroMissingExports(t *testing.T) {
	ctx := context.Background()

	_, err := LoadWazero(ctx, emptyModule)
	if err == nil {
		t.Fatal("expected error for module without engine exports")
	}
	if !stderrors.Is(err, errors.NotFound(errors.PhaseLoad, "", "")) {
		t.Errorf("got %v, want not_found", err)
	}
}

func TestWazeroCallBeforeLoad(t *testing.T) {
	ctx := context.Background()

	var eng Wazero
	if _, err := eng.Parse(ctx, "{}"); !stderrors.Is(err, errors.NotInitialized(errors.PhaseCall, "")) {
		t.Errorf("Parse on unloaded engine = %v, want not_initialized", err)
	}
	if _, err := eng.Format(ctx, "{}"); !stderrors.Is(err, errors.NotInitialized(errors.PhaseCall, "")) {
		t.Errorf("Format on unloaded engine = %v, want not_initialized", err)
	}
}

func TestWazeroCloseIdempotent(t *testing.T) {
	ctx := context.Background()

	var eng Wazero
	if err := eng.Close(ctx); err != nil {
		t.Errorf("Close on unloaded engine: %v", err)
	}
	if err := eng.Close(ctx); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
