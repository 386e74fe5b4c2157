// README: Entry point; loads config, wires the estimate service and serves HTTP until signalled.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripcost/internal/ai"
	"tripcost/internal/config"
	httptransport "tripcost/internal/http"
	"tripcost/internal/infra"
	"tripcost/internal/modules/estimate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger(cfg.Log.Env, cfg.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider := ai.NewOpenRouterProvider(cfg.OpenRouter)
	if !provider.HasAPIKey() {
		logger.Warn("OPENROUTER_API_KEY is not set; estimates will return a configuration error")
	}

	estimateSvc := estimate.NewService(provider, logger)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Estimate:     estimateSvc,
		Logger:       logger,
		AllowOrigins: cfg.CORS.AllowOrigins,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		logger.Info("http server listening",
			zap.String("addr", cfg.HTTP.Addr),
			zap.String("model", provider.Model()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
		return
	}
	logger.Info("server stopped")
}
