// Package editor implements the client interaction layer: mode
// selection, live re-transformation on every input change, and uniform
// error capture.
//
// State is a value threaded through pure handlers: each event handler
// takes the current state and an event and returns the next state, so
// a session can be driven headlessly without any interaction surface.
// A Session routes events through a dispatch table keyed by event
// kind and owns the single point where engine failures are converted
// into Failure results; no engine failure, returned or panicked, ever
// escapes a dispatch.
//
// After a dispatch returns, State.Last always reflects the active
// mode's transform applied to the current input; switching modes
// re-runs the transform on the unchanged input immediately.
package editor
