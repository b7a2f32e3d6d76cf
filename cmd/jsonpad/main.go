package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/rjkit/jsonpad"
	"github.com/rjkit/jsonpad/editor"
	"github.com/rjkit/jsonpad/engine"
)

func main() {
	var (
		wasmFile = flag.String("wasm", "", "Path to a wasm engine module (default: built-in native engine)")
		modeName = flag.String("mode", "parse", "Initial mode: parse or format")
		text     = flag.String("text", "", "Transform this text once and print the result")
		debugLog = flag.String("debug", "", "Write debug logs to this file")
	)
	flag.Parse()

	if *debugLog != "" {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{*debugLog}
		logger, err := cfg.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open debug log: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		engine.SetLogger(logger)
	}

	mode, err := parseMode(*modeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	load := func(ctx context.Context) (jsonpad.Engine, error) {
		return newEngine(ctx, *wasmFile)
	}

	if hasTextArg() {
		if err := runOnce(load, mode, *text); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Usage: jsonpad [-wasm file.wasm] [-mode parse|format]")
		fmt.Fprintln(os.Stderr, "       jsonpad -text '{\"a\":1}' [-mode parse|format]")
		fmt.Fprintln(os.Stderr, "Interactive mode needs a terminal; use -text for one-shot transforms.")
		os.Exit(1)
	}

	if err := runInteractive(load, mode); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// hasTextArg reports whether -text was passed explicitly, so that
// `-text ""` still runs one-shot on empty input.
func hasTextArg() bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "text" {
			found = true
		}
	})
	return found
}

func parseMode(name string) (editor.Mode, error) {
	switch name {
	case "parse":
		return editor.ModeTypeParse, nil
	case "format":
		return editor.ModeFormat, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want parse or format)", name)
	}
}

func newEngine(ctx context.Context, wasmFile string) (jsonpad.Engine, error) {
	if wasmFile == "" {
		return engine.NewNative(), nil
	}
	data, err := os.ReadFile(wasmFile)
	if err != nil {
		return nil, fmt.Errorf("read wasm file: %w", err)
	}
	eng, err := engine.LoadWazero(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("load engine: %w", err)
	}
	return eng, nil
}

// runOnce drives one transform through a headless session and writes
// the result to stdout. Success output and failure messages share the
// stream, exactly like the interactive output pane.
func runOnce(load func(context.Context) (jsonpad.Engine, error), mode editor.Mode, text string) error {
	ctx := context.Background()

	eng, err := load(ctx)
	if err != nil {
		return err
	}
	defer eng.Close(ctx)

	sess := editor.NewSession(eng)
	st := editor.NewState()
	st.Mode = mode
	st = sess.SetInput(ctx, st, text)

	r := editor.WriterRenderer{W: os.Stdout}
	if err := r.Render(st.Last); err != nil {
		return err
	}
	fmt.Println()
	return nil
}
