package obs

import (
	"context"
	"log/slog"
	"time"
)

type ctxKey string

const SessionIDKey ctxKey = "session_id"

// Attach a session id so every timed operation of one run can be correlated.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, SessionIDKey, id)
}

func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDKey).(string)
	return id
}

// Time an operation. Call the returned func with a pointer to the named error
// result, usually as `defer obs.Time(ctx, "op")(&err)`.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	sessionID := SessionID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			slog.WarnContext(ctx, "op failed",
				slog.String("session_id", sessionID),
				slog.String("op", name),
				slog.Int64("dur_ms", dur.Milliseconds()),
				slog.Any("err", *errp))
			return
		}
		slog.DebugContext(ctx, "op done",
			slog.String("session_id", sessionID),
			slog.String("op", name),
			slog.Int64("dur_ms", dur.Milliseconds()))
	}
}
