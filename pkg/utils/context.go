package utils

import (
	"context"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
	RequestID   contextKey = "request_id"
)

func SetUserContext(ctx context.Context, userID int64, username string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, UsernameKey, username)
	return ctx
}

func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}

func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// SetRequestID stores the per-request correlation id set by the logger middleware
func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestID, id)
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestID).(string)
	return id
}
