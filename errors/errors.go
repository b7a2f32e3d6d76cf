package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse  Phase = "parse"  // structural parsing of input text
	PhaseFormat Phase = "format" // canonical formatting
	PhaseLoad   Phase = "load"   // engine module loading
	PhaseCall   Phase = "call"   // engine invocation
)

// Kind categorizes the error
type Kind string

const (
	KindUnexpectedToken    Kind = "unexpected_token"
	KindMissingChar        Kind = "missing_char"
	KindUnterminatedString Kind = "unterminated_string"
	KindInvalidEscape      Kind = "invalid_escape"
	KindInvalidUnicode     Kind = "invalid_unicode"
	KindInvalidNumber      Kind = "invalid_number"
	KindTrailingChars      Kind = "trailing_chars"
	KindInvalidInput       Kind = "invalid_input"
	KindNotInitialized     Kind = "not_initialized"
	KindNotFound           Kind = "not_found"
	KindTrap               Kind = "trap"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the parser's error vocabulary. The
// detail payloads carry the offending remainder of the input so a
// failure points at where parsing stopped.

// UnexpectedToken creates an unexpected token error
func UnexpectedToken(detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnexpectedToken,
		Detail: detail,
	}
}

// MissingChar reports an expected character that was not found
func MissingChar(want rune, rest string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindMissingChar,
		Detail: fmt.Sprintf("expected '%c', found: '%s'", want, rest),
	}
}

// UnterminatedString reports a string literal with no closing quote
func UnterminatedString() *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnterminatedString,
		Detail: "unterminated string",
	}
}

// InvalidEscape reports a malformed escape sequence
func InvalidEscape(detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidEscape,
		Detail: detail,
	}
}

// InvalidUnicode reports a malformed \uXXXX escape
func InvalidUnicode() *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidUnicode,
		Detail: "invalid unicode escape",
	}
}

// InvalidNumber reports a malformed number literal
func InvalidNumber(detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidNumber,
		Detail: detail,
	}
}

// TrailingChars reports leftover input after a complete value
func TrailingChars(rest string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindTrailingChars,
		Detail: fmt.Sprintf("unexpected characters after JSON value: '%s'", rest),
	}
}

// Host-side convenience constructors

// NotInitialized creates a not-initialized error for a missing engine
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Load creates a module loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidInput,
		Detail: detail,
		Cause:  cause,
	}
}

// Trap wraps a guest trap raised during an engine call
func Trap(fn string, cause error) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindTrap,
		Detail: fmt.Sprintf("call %s", fn),
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
