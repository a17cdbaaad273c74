package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type contextKey int

const nestIDKey contextKey = iota

// getNestID extracts the nest ID from context.
func getNestID(ctx context.Context) string {
	v, _ := ctx.Value(nestIDKey).(string)
	return v
}

// defaultNestMiddleware resolves the daemon's single nest and injects
// its ID into the request context so tools scope their queries to it.
// A multi-nest build would swap this for a resolver keyed on the
// request.
func defaultNestMiddleware(svc NestService) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			// Skip protocol methods
			if method == "initialize" || method == "ping" {
				return next(ctx, method, req)
			}

			if overview, err := svc.Overview(ctx); err == nil {
				ctx = context.WithValue(ctx, nestIDKey, overview.Nest.ID)
			}
			return next(ctx, method, req)
		}
	}
}
