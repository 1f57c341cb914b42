package settings

import (
	"context"
)

type contextKey string

const runContextKey contextKey = "lsx.run"

// IntoContext attaches the run options for the current invocation to ctx.
func IntoContext(ctx context.Context, s *Run) context.Context {
	return context.WithValue(ctx, runContextKey, s)
}

// FromContext returns the run options stored by IntoContext, if any.
func FromContext(ctx context.Context) (*Run, bool) {
	s, ok := ctx.Value(runContextKey).(*Run)
	return s, ok
}
