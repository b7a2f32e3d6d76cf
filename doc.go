// Package jsonpad is an interactive JSON playground: type text in an
// input pane and see it live-transformed on every keystroke, either as
// a structural parse dump or as canonically formatted JSON.
//
// # Architecture Overview
//
// The repository is organized into a few packages with distinct
// responsibilities:
//
//	jsonpad/         Root package with the Engine interface
//	├── rj/          Native JSON engine: Value, parser, formatter, dump
//	├── engine/      Engine hosts: native and wazero-backed wasm
//	├── editor/      Session state, event dispatch, error adapter
//	├── errors/      Structured error types
//	└── cmd/jsonpad/ CLI entry point and interactive TUI
//
// # Quick Start
//
// Run a single transform against the native engine:
//
//	eng := engine.NewNative()
//	out, err := eng.Format(ctx, `{"a":1}`)
//	fmt.Println(out)
//
// Or drive a full editor session headlessly:
//
//	sess := editor.NewSession(eng)
//	st := editor.NewState()
//	st = sess.Dispatch(ctx, st, editor.Event{Kind: editor.EventInputChanged, Text: `{"a":1}`})
//	fmt.Println(st.Last.Text())
//
// # Engines
//
// Two Engine implementations exist. The native engine runs the rj
// parser and formatter in-process. The wazero engine hosts an
// externally compiled wasm build of the engine; it requires a one-time
// load step before any call, and every call on an unloaded engine
// fails with a structured not_initialized error.
//
// # Concurrency
//
// Engines and editor sessions are not safe for concurrent use. All
// interaction is serialized through a single event loop; each event is
// processed to completion before the next one is handled.
package jsonpad
