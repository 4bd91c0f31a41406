package settings

import "context"

// contextKey is unexported so no other package can collide with it.
type contextKey struct{}

var runKey contextKey

// IntoContext returns a copy of ctx carrying the given Run.
func IntoContext(ctx context.Context, r *Run) context.Context {
	return context.WithValue(ctx, runKey, r)
}

// FromContext retrieves the Run stored by IntoContext, if any.
func FromContext(ctx context.Context) (*Run, bool) {
	r, ok := ctx.Value(runKey).(*Run)
	return r, ok
}
