package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ptcharoen/agrirot/internal/pkg/constants"
	"github.com/ptcharoen/agrirot/internal/pkg/utils"
	"github.com/spf13/viper"
)

// RequestIDMiddleware tags every request context with an id the logger
// picks up.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqID := uuid.NewString()
		ctx.Set(constants.CtxKeyRequestID, reqID)

		req := ctx.Request()
		ctx.SetRequest(req.WithContext(context.WithValue(req.Context(), constants.CtxKeyRequestID, reqID)))

		return next(ctx)
	}
}

// AdminMiddleware guards mutating catalog endpoints with the shared admin
// secret token.
func (svc *APIService) AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeySecretToken)
		if err != nil {
			return constants.ErrUnauthorized
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		if token.Secret != viper.GetString(constants.ViperSecretKey) {
			return constants.ErrUnauthorized
		}

		return next(ctx)
	}
}
