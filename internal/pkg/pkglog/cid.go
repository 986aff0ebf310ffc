package pkglog

import "context"

type correlationIDContextKey struct{}

const invalidCorrelationID = "[invalid_correlation_id]"

// GetCorrelationID returns the correlation ID stored in the context.
//
// Middleware sets this value early in the request lifecycle so it can be
// attached to every log line the request produces.
func GetCorrelationID(ctx context.Context) string {
	cid, ok := ctx.Value(correlationIDContextKey{}).(string)
	if !ok {
		return invalidCorrelationID
	}
	return cid
}

// SetCorrelationID stores a correlation ID into the context.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDContextKey{}, cid)
}
