package editor

import (
	"context"
	"fmt"

	"github.com/rjkit/jsonpad"
)

// EventKind identifies an interaction event.
type EventKind int

const (
	// EventInputChanged carries the input pane's new full text.
	EventInputChanged EventKind = iota
	// EventModeSelected carries the newly selected mode.
	EventModeSelected
)

// Event is one interaction event. Text is set for EventInputChanged,
// Mode for EventModeSelected.
type Event struct {
	Kind EventKind
	Text string
	Mode Mode
}

// Handler computes the next state from the current state and one
// event. Handlers are pure with respect to State.
type Handler func(ctx context.Context, st State, ev Event) State

// Session binds an engine to the event dispatch table. Events are
// processed one at a time, each to completion; a Session is not safe
// for concurrent use.
type Session struct {
	engine   jsonpad.Engine
	handlers map[EventKind]Handler
}

// NewSession creates a session driving eng.
func NewSession(eng jsonpad.Engine) *Session {
	s := &Session{engine: eng}
	s.handlers = map[EventKind]Handler{
		EventInputChanged: s.handleInputChanged,
		EventModeSelected: s.handleModeSelected,
	}
	return s
}

// Dispatch routes ev to its handler and returns the next state.
// Unknown event kinds leave the state unchanged.
func (s *Session) Dispatch(ctx context.Context, st State, ev Event) State {
	h, ok := s.handlers[ev.Kind]
	if !ok {
		return st
	}
	return h(ctx, st, ev)
}

// SetInput replaces the input text and re-transforms it under the
// active mode.
func (s *Session) SetInput(ctx context.Context, st State, text string) State {
	return s.Dispatch(ctx, st, Event{Kind: EventInputChanged, Text: text})
}

// SetMode switches the active mode and unconditionally re-transforms
// the unchanged input, as if the user had just typed the last
// character again.
func (s *Session) SetMode(ctx context.Context, st State, m Mode) State {
	return s.Dispatch(ctx, st, Event{Kind: EventModeSelected, Mode: m})
}

func (s *Session) handleInputChanged(ctx context.Context, st State, ev Event) State {
	st.Input = ev.Text
	st.Last = s.transform(ctx, st.Mode, st.Input)
	return st
}

func (s *Session) handleModeSelected(ctx context.Context, st State, ev Event) State {
	st.Mode = ev.Mode
	st.Last = s.transform(ctx, st.Mode, st.Input)
	return st
}

// transform wraps exactly one engine invocation. A returned error or
// a panic becomes a Failure result; nothing propagates to the caller.
func (s *Session) transform(ctx context.Context, m Mode, input string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Failure(fmt.Sprint(r))
		}
	}()

	fn := s.engine.Parse
	if m == ModeFormat {
		fn = s.engine.Format
	}

	out, err := fn(ctx, input)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(out)
}
