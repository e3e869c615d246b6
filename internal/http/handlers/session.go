package handlers

import (
	"context"
	"net/http"
)

type contextKey string

const usernameKey = contextKey("username")

// WithUsername stores the session username on the context. The auth
// middleware calls this after validating the token.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// GetUsername returns the session username, or "" outside a session.
func GetUsername(r *http.Request) string {
	if v, ok := r.Context().Value(usernameKey).(string); ok {
		return v
	}
	return ""
}
