package plugin

import (
	"context"
	"log/slog"
	"time"
)

// Middleware wraps a Handler. Middleware registered first runs outermost.
type Middleware func(next Handler) Handler

type commandKey struct{}

// CommandName returns the name of the command being invoked, or "" outside
// of Registry.Invoke.
func CommandName(ctx context.Context) string {
	name, _ := ctx.Value(commandKey{}).(string)
	return name
}

func withCommandName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey{}, name)
}

// RecoverMiddleware turns handler panics into an INTERNAL_ERROR response.
// New installs it automatically.
func RecoverMiddleware() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, payload []byte) (resp []byte, err error) {
			defer func() {
				if r := recover(); r != nil {
					resp = NewPanicError(r).ToJSON()
					err = nil
				}
			}()
			return next(ctx, payload)
		}
	}
}

// LoggingMiddleware logs each invocation with its duration. Error responses
// are logged at warn.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, payload []byte) ([]byte, error) {
			name := CommandName(ctx)
			start := time.Now()
			resp, err := next(ctx, payload)
			attrs := []any{"command", name, "duration", time.Since(start)}
			switch {
			case err != nil:
				logger.ErrorContext(ctx, "command failed", append(attrs, "err", err)...)
			default:
				if e, ok := AsError(resp); ok {
					logger.WarnContext(ctx, "command returned error", append(attrs, "error", e.Error, "message", e.Message)...)
				} else {
					logger.DebugContext(ctx, "command completed", append(attrs, "result", string(resp))...)
				}
			}
			return resp, err
		}
	}
}
