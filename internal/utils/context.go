package utils

import (
	"context"

	"github.com/google/uuid"
)

// SessionData is the authenticated user attached to a request.
type SessionData struct {
	UserID   uuid.UUID
	Username string
}

type contextKey string

const ContextSessionKey contextKey = "session"

func WithSession(ctx context.Context, s SessionData) context.Context {
	return context.WithValue(ctx, ContextSessionKey, s)
}

// GetSessionFromContext returns the session stored by the session
// middleware; ok is false for anonymous requests.
func GetSessionFromContext(ctx context.Context) (SessionData, bool) {
	s, ok := ctx.Value(ContextSessionKey).(SessionData)
	return s, ok
}

// SessionCookie carries "Bearer <token>".
const SessionCookie = "access_token"
