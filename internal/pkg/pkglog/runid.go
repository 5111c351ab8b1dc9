package pkglog

import "context"

type runIDContextKey struct{}

// GetRunID returns the pipeline run ID stored in the context.
//
// The application shell is expected to set this value at startup so every log
// line of one batch run can be correlated.
func GetRunID(ctx context.Context) string {
	id, ok := ctx.Value(runIDContextKey{}).(string)
	if !ok {
		return "[invalid_run_id]"
	}
	return id
}

// SetRunID stores a pipeline run ID into the context.
func SetRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDContextKey{}, id)
}
