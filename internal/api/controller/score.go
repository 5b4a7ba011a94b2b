package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/maplecrest/canscore/internal/domain"
	"github.com/maplecrest/canscore/internal/service/scoring"
)

// CalculateScore scores whatever slice of the profile the form has filled in
// so far. There is no required field: missing sections just contribute zero.
func (c *Controller) CalculateScore(ctx echo.Context) error {
	profile := new(domain.ApplicantProfile)
	if err := ctx.Bind(profile); err != nil {
		return err
	}

	breakdown := scoring.ComputeTotal(profile)

	return ctx.JSON(http.StatusOK, domain.ScoreResponse{
		Total:     breakdown.Total,
		Breakdown: breakdown,
	})
}
