package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/random"
	"github.com/maplecrest/canscore/internal/pkg/constants"
	"github.com/maplecrest/canscore/internal/pkg/utils"
	"github.com/spf13/viper"
)

// AdminMiddleware guards mutating routes behind the signed secret cookie.
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

// RequestIDMiddleware stamps every request with an id and threads it through
// the request context so the logger can pick it up.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		rid := ctx.Request().Header.Get(echo.HeaderXRequestID)
		if rid == "" {
			rid = random.String(16)
		}
		ctx.Response().Header().Set(echo.HeaderXRequestID, rid)

		reqCtx := context.WithValue(ctx.Request().Context(), constants.CtxKeyRequestID, rid)
		ctx.SetRequest(ctx.Request().WithContext(reqCtx))

		return next(ctx)
	}
}
