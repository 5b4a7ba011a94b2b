package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/maplecrest/canscore/internal/domain"
	"github.com/maplecrest/canscore/internal/service/draws"
)

func (c *Controller) ListDraws(ctx echo.Context) error {
	req := domain.ListDrawsRequest{
		Page:  draws.DefaultPage,
		Limit: draws.DefaultLimit,
	}
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	result := c.drawsService.GetDraws(ctx.Request().Context(), req.Page, req.Limit)

	return ctx.JSON(http.StatusOK, result)
}

func (c *Controller) GetDrawSummary(ctx echo.Context) error {
	summary := c.drawsService.GetSummary(ctx.Request().Context())

	return ctx.JSON(http.StatusOK, summary)
}
