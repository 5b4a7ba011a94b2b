package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maplecrest/canscore/internal/api"
	"github.com/maplecrest/canscore/internal/pkg/config"
	"github.com/maplecrest/canscore/internal/pkg/fetch"
	"github.com/maplecrest/canscore/internal/pkg/logger"
	"github.com/maplecrest/canscore/internal/pkg/store"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, err)
	}

	logger.Init(cfg.LogLevel)
	defer logger.Sync()

	pool, err := dialPool(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	svc, err := api.NewAPIService(store.NewStore(pool), fetch.NewClient(cfg.FetchTimeout), cfg)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(cfg.ListenAddr)
	logger.Infof(ctx, "listening on %s", cfg.ListenAddr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "shutdown: %s", err.Error())
	}
}

// dialPool retries the initial database dial; the service should survive a
// database that comes up a few seconds after it does.
func dialPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	err := backoff.Retry(
		func() error {
			var dialErr error
			pool, dialErr = pgxpool.New(ctx, dsn)
			if dialErr != nil {
				return dialErr
			}
			if pingErr := pool.Ping(ctx); pingErr != nil {
				pool.Close()
				return pingErr
			}
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(2*time.Second), 10),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
