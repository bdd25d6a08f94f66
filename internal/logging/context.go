package logging

import "context"

type fieldsKey struct{}

// WithFields returns a context whose log calls carry the given key-value
// pairs in addition to their own.
func WithFields(ctx context.Context, args ...any) context.Context {
	prev := fields(ctx)
	merged := make([]any, 0, len(prev)+len(args))
	merged = append(merged, prev...)
	merged = append(merged, args...)
	return context.WithValue(ctx, fieldsKey{}, merged)
}

func fields(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	f, _ := ctx.Value(fieldsKey{}).([]any)
	return f
}

// withContext prepends the context-bound fields to args.
func withContext(ctx context.Context, args []any) []any {
	f := fields(ctx)
	if len(f) == 0 {
		return args
	}
	return append(append(make([]any, 0, len(f)+len(args)), f...), args...)
}
