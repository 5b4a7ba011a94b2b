package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/maplecrest/canscore/internal/domain"
)

func (c *Controller) BackfillRounds(ctx echo.Context) error {
	saved, err := c.ingestService.BackfillRounds(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.BackfillResponse{Ingested: len(saved)})
}
