package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"bannerarchitect/internal/catalog"
	"bannerarchitect/internal/generation"
	"bannerarchitect/internal/http/handlers"
	httpapi "bannerarchitect/internal/http/httpapi"
	"bannerarchitect/internal/infra"
	"bannerarchitect/internal/providers/image"
)

func main() {
	// .env is optional
	_ = godotenv.Load(".env", ".env.local")

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	generator, err := image.NewGenerator(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build image generator")
	}

	cat := catalog.Default()
	store := generation.NewStore(cat.List())
	orchestrator := generation.NewOrchestrator(cat, store, image.NewBannerRenderer(generator), logger)

	app := handlers.NewApp(cat, orchestrator, logger)
	router := httpapi.NewRouter(app, logger, cfg.CORSAllowedOrigins)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("provider", cfg.ImageProvider).Msgf("API listening on %s", server.Addr())
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}

	// In-flight generations are not cancelled; let them settle.
	logger.Info().Msg("waiting for in-flight generations")
	orchestrator.Wait()
	logger.Info().Msg("server stopped")
}
