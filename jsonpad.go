package jsonpad

import "context"

// Engine performs text transformations. Parse returns a structural
// dump of the input; Format returns the canonical 2-space layout. Both
// fail with a displayable error on invalid input.
type Engine interface {
	Parse(ctx context.Context, input string) (string, error)
	Format(ctx context.Context, input string) (string, error)
	Close(ctx context.Context) error
}
