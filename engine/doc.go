// Package engine provides the transformation engine hosts.
//
// Native runs the rj parser and formatter in-process and is always
// ready. Wazero hosts an externally compiled wasm build of the engine
// via the wazero runtime; it must be loaded with LoadWazero before any
// call, and calls on an unloaded or closed engine fail with a
// structured not_initialized error rather than misbehaving.
//
// Both satisfy the jsonpad.Engine interface: parse returns a
// structural dump of the input, format returns the canonical
// two-space layout, and either fails with a displayable error on
// invalid input.
package engine
