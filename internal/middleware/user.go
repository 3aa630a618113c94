package middleware

import (
	"context"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskdeck/backend/repository"
)

// UsernameKey is the request user value holding the resolved username.
const UsernameKey = "username"

// RequireUser gates routes behind a logged-in user. The acting username comes
// from the X-Username header when present, otherwise from the persisted
// current-user preference written at login.
func RequireUser(prefs repository.PreferenceRepository, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			username := string(ctx.Request.Header.Peek("X-Username"))
			if username == "" {
				stdCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				stored, err := prefs.CurrentUser(stdCtx)
				cancel()
				if err != nil {
					logger.Warn("current user lookup failed", zap.Error(err))
				}
				username = stored
			}
			if username == "" {
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			ctx.SetUserValue(UsernameKey, username)
			next(ctx)
		}
	}
}
