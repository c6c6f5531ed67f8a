package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"daysoflight/internal/config"
	"daysoflight/internal/content"
	"daysoflight/internal/houses"
	"daysoflight/internal/server"
	"daysoflight/internal/web"
)

func main() {
	cfg, err := config.LoadSite()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	server.SetupLogger(cfg.Environment)

	c, err := content.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load site content")
	}

	client := houses.NewClient(cfg.HousesAPIURL, &http.Client{Timeout: cfg.ClientTimeout})
	handler := web.New(client, c, cfg.RenderWait)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	log.Info().
		Str("houses_url", client.URL()).
		Dur("render_wait", cfg.RenderWait).
		Msg("Site configured")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.Port, server.Chain(mux, server.WithRequestID, server.WithLogging, server.WithRecovery))
	if err := server.Run(ctx, srv, cfg.ShutdownTimeout); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
