package middleware

import (
	"context"
	"net/http"
)

type ctxKey int

const userIDKey ctxKey = 0

// userIDHeader carries the authenticated operator id. Authentication itself
// happens at the gateway; this service only requires the header's presence.
const userIDHeader = "X-User-ID"

// Auth rejects requests without an operator id and stores it in the context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(userIDHeader)
		if userID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"missing X-User-ID header"}`))
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID returns the operator id stored by Auth.
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
