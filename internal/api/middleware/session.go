package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

const SessionHeader = "X-Session-ID"

type sessionContextKey struct{}

// Session binds every request to a browser session. A missing or malformed
// X-Session-ID is replaced by a fresh one; the effective id is echoed back so
// the client can keep sending it.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionHeader)
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.NewString()
		}

		w.Header().Set(SessionHeader, sessionID)

		ctx := WithSessionID(r.Context(), sessionID)
		ctx = context.WithValue(ctx, LoggerKey, LoggerFromContext(ctx).With(slog.String("session_id", sessionID)))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sessionID)
}

// SessionIDFromContext is empty outside the Session middleware.
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionContextKey{}).(string)
	return id
}
