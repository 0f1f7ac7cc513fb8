package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/analyzer"
	"resume-builder/internal/config"
	"resume-builder/internal/logger"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	logger.Init(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen, err := textGenerator(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("text generator")
	}

	renderer := infra.NewChromedpRenderer(cfg.PDF.ChromePath)
	processor := usecase.NewProcessor(renderer, analyzer.New(gen), usecase.Options{
		Compress: cfg.PDF.Compress,
		Font:     render.FontSet(cfg.PDF.Font),
	})

	h := httpadapter.NewHandler(processor, cfg.MaxUploadBytes())
	app := httpadapter.NewApp(h, httpadapter.AppConfig{
		AllowedOrigins: cfg.Origins(),
		// multipart framing on top of the upload itself
		BodyLimit: cfg.MaxUploadBytes() + 1024*1024,
	})

	go func() {
		logger.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
}

// textGenerator prefers Gemini when a key is configured and falls back to
// the internal ai-service.
func textGenerator(ctx context.Context, cfg *config.Config) (analyzer.TextGenerator, error) {
	if cfg.AI.GeminiAPIKey != "" {
		logger.Info().Str("model", cfg.AI.GeminiModel).Msg("using gemini for analysis")
		return ai.NewGeminiClient(ctx, cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}
	logger.Info().Str("url", cfg.AI.ServiceURL).Msg("using ai-service for analysis")
	return ai.NewClient(cfg.AI.ServiceURL), nil
}
