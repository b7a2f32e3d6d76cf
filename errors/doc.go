// Package errors provides structured error types for the jsonpad
// library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The parse-phase kinds mirror the transformation
// engine's error vocabulary: unexpected tokens, missing expected
// characters, unterminated strings, bad escapes, malformed numbers and
// trailing input.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLoad, errors.KindNotFound).
//		Detail("export %q missing", "parse").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MissingChar(':', rest)
//	err := errors.TrailingChars(rest)
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
