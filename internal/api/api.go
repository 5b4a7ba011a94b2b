package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/maplecrest/canscore/internal/api/controller"
	"github.com/maplecrest/canscore/internal/pkg/config"
	"github.com/maplecrest/canscore/internal/pkg/logger"
	"github.com/maplecrest/canscore/internal/pkg/store"
	"github.com/maplecrest/canscore/internal/service/draws"
	"github.com/maplecrest/canscore/internal/service/ingest"
)

type APIService struct {
	router        *echo.Echo
	drawsService  *draws.Service
	ingestService *ingest.Service
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(st store.Store, fetcher draws.Fetcher, cfg *config.Config) (*APIService, error) {
	svc := &APIService{router: echo.New()}
	svc.router.HideBanner = true

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(RequestIDMiddleware)
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	svc.drawsService = draws.NewService(fetcher, st, draws.Config{
		RoundsJSONURL: cfg.RoundsJSONURL,
		RoundsPageURL: cfg.RoundsPageURL,
	})
	svc.ingestService = ingest.NewService(svc.drawsService, st)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.drawsService, svc.ingestService)

	score := api.Group("/score")
	score.POST("/calculate", cntrl.CalculateScore)

	admin := api.Group("/admin")
	admin.POST("/login", cntrl.AdminLogin)

	drawsGroup := api.Group("/draws")
	drawsGroup.GET("/list", cntrl.ListDraws)
	drawsGroup.GET("/summary", cntrl.GetDrawSummary)
	drawsGroup.POST("/backfill", cntrl.BackfillRounds, svc.AdminMiddleware)

	return svc, nil
}
