package handler

import (
	"context"

	"github.com/stationchief/station-backend/internal/domain"
)

type ctxKey string

const userKey ctxKey = "authUser"

// WithUser stores the verified Telegram user in the request context.
// The auth middleware sets it; handlers behind the middleware read it.
func WithUser(ctx context.Context, user domain.TelegramUser) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext extracts the verified user set by the auth middleware.
func UserFromContext(ctx context.Context) (domain.TelegramUser, bool) {
	user, ok := ctx.Value(userKey).(domain.TelegramUser)
	return user, ok
}
