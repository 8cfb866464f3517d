package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rental-agent/config"
	httpLayer "rental-agent/http"
	"rental-agent/repository"
	"rental-agent/service"
)

const shutdownTimeout = 10 * time.Second

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the analysis HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cache, closeCache, err := newCache(ctx, cfg.Cache)
		if err != nil {
			return err
		}
		defer closeCache()

		analysisRepo := repository.NewAnalysisRepositoryMemory()
		analysisService := service.NewAnalysisService(
			analysisRepo,
			cache,
			time.Duration(cfg.Cache.TTLMinutes)*time.Minute,
		)
		financingService := service.NewFinancingService()

		rateLimiter := httpLayer.NewRateLimiter(
			cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSecs)*time.Second,
		)
		defer rateLimiter.Stop()

		router := httpLayer.NewRouter(
			httpLayer.NewAnalysisHandler(analysisService),
			httpLayer.NewFinancingHandler(financingService),
			rateLimiter,
		)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		server := &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      router,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSecs) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSecs) * time.Second,
			IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSecs) * time.Second,
		}

		serverErr := make(chan error, 1)
		go func() {
			zap.L().Info("starting server", zap.Int("port", port), zap.String("cache", cfg.Cache.Driver))
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				serverErr <- err
			}
		}()

		select {
		case err := <-serverErr:
			return eris.Wrap(err, "server listen")
		case <-ctx.Done():
			zap.L().Info("shutting down server")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return eris.Wrap(err, "server shutdown")
		}

		zap.L().Info("server exited")
		return nil
	},
}

// newCache builds the configured analysis cache. The returned func releases
// any connection it holds.
func newCache(ctx context.Context, c config.CacheConfig) (repository.CacheRepository, func(), error) {
	switch c.Driver {
	case "redis":
		redisCache := repository.NewRedisCache(c.RedisAddr)
		if err := redisCache.Ping(ctx); err != nil {
			_ = redisCache.Close()
			return nil, nil, eris.Wrapf(err, "connect redis %s", c.RedisAddr)
		}
		return redisCache, func() {
			if err := redisCache.Close(); err != nil {
				zap.L().Warn("closing redis cache failed", zap.Error(err))
			}
		}, nil
	default:
		return repository.NewMemoryCache(), func() {}, nil
	}
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
