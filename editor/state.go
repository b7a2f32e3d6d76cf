package editor

// Mode selects the active transform.
type Mode int

const (
	// ModeTypeParse runs the structural-parse transform.
	ModeTypeParse Mode = iota
	// ModeFormat runs the canonical-format transform.
	ModeFormat
)

func (m Mode) String() string {
	switch m {
	case ModeTypeParse:
		return "type-parse"
	case ModeFormat:
		return "format"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of one engine invocation: either the
// transformed text or a displayable failure message, never both.
type Result struct {
	text   string
	failed bool
}

// Success wraps a completed transform's output.
func Success(text string) Result {
	return Result{text: text}
}

// Failure wraps a failed transform's message.
func Failure(message string) Result {
	return Result{text: message, failed: true}
}

// Text returns the payload verbatim: output text on success, failure
// message otherwise. Both occupy the same output slot.
func (r Result) Text() string {
	return r.text
}

// Failed reports whether the result is the failure variant.
func (r Result) Failed() bool {
	return r.failed
}

// State is the full session state. It is a value: handlers take the
// current state and return the next one.
type State struct {
	Mode  Mode
	Input string
	Last  Result
}

// NewState returns the startup state: type-parse mode, empty input,
// and a trivially-successful empty result.
func NewState() State {
	return State{Mode: ModeTypeParse, Input: "", Last: Success("")}
}
