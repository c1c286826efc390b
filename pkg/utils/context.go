package utils

import (
	"context"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	UserKey      contextKey = "user"
)

func SetRequestIDContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok
}

// SetUserContext stashes the authenticated user. The value is typed by
// the auth middleware; handlers retrieve it through middleware helpers.
func SetUserContext(ctx context.Context, user any) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

func GetUserFromContext(ctx context.Context) any {
	return ctx.Value(UserKey)
}
