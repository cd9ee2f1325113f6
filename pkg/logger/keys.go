package logger

import "context"

type batchIDKey struct{}

// WithBatchID adds a batch ID to the context.
func WithBatchID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, batchIDKey{}, id)
}

// GetBatchID retrieves the batch ID from the context.
// Returns the batch ID and a boolean indicating whether it was found.
func GetBatchID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(batchIDKey{}).(string)
	return id, ok
}
