package engine

import (
	"context"

	"github.com/rjkit/jsonpad/rj"
)

// Native is the in-process engine built on the rj package. The zero
// value is ready to use.
type Native struct{}

// NewNative creates a native engine.
func NewNative() *Native {
	return &Native{}
}

// Parse parses input and returns its structural dump.
func (e *Native) Parse(ctx context.Context, input string) (string, error) {
	v, err := rj.Parse(input)
	if err != nil {
		return "", err
	}
	return rj.Dump(v), nil
}

// Format parses input and returns the canonical two-space layout.
func (e *Native) Format(ctx context.Context, input string) (string, error) {
	return rj.Format(input)
}

// Close releases nothing; the native engine holds no resources.
func (e *Native) Close(ctx context.Context) error {
	return nil
}
