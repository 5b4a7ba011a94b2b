package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/maplecrest/canscore/internal/domain"
	"github.com/maplecrest/canscore/internal/pkg/constants"
	"github.com/maplecrest/canscore/internal/pkg/utils"
	"github.com/spf13/viper"
)

// AdminLogin exchanges the shared admin secret for the signed cookie the
// admin middleware checks.
func (c *Controller) AdminLogin(ctx echo.Context) error {
	req := new(domain.AdminLoginRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	if req.Secret != viper.GetString(constants.ViperSecretKey) {
		return constants.ErrUnauthorized
	}

	token, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{Secret: req.Secret})
	if err != nil {
		return err
	}

	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeySecretToken,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	return ctx.NoContent(http.StatusNoContent)
}
