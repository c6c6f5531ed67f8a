package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"daysoflight/internal/api"
	"daysoflight/internal/cache"
	"daysoflight/internal/config"
	"daysoflight/internal/firestore"
	"daysoflight/internal/repo"
	"daysoflight/internal/server"
	"daysoflight/internal/store"
)

func main() {
	cfg, err := config.LoadAPI()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	server.SetupLogger(cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := cache.New(cfg.CacheDir, cfg.CacheTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize cache")
	}
	// Listings cached by a previous process may predate a re-seed.
	if err := c.InvalidateAll(); err != nil {
		log.Warn().Err(err).Msg("Failed to clear cache")
	}

	var r api.Repository
	if cfg.ProjectID != "" {
		fsClient, err := firestore.New(ctx, cfg.ProjectID, cfg.Collection)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Firestore client")
		}
		defer fsClient.Close()
		r = fsClient
		log.Info().Str("project", cfg.ProjectID).Str("collection", cfg.Collection).Msg("Repository: Firestore")
	} else {
		s, err := openStore(ctx, cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize store")
		}
		if closer, ok := s.(io.Closer); ok {
			defer closer.Close()
		}
		seed, fromStore, err := repo.LoadSeed(s)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load house seed")
		}
		r = repo.NewMemory(seed)
		log.Info().Int("houses", len(seed)).Bool("from_store", fromStore).Msg("Repository: memory")
	}

	handler := api.New(r, c, cfg.CORSOrigins)

	log.Info().Str("cache_dir", cfg.CacheDir).Dur("cache_ttl", cfg.CacheTTL).Msg("API configured")

	srv := server.New(cfg.Port, handler.Routes())
	if err := server.Run(ctx, srv, cfg.ShutdownTimeout); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg *config.API) (store.Store, error) {
	if cfg.Bucket != "" {
		log.Info().Str("bucket", cfg.Bucket).Msg("Store: GCS")
		return store.NewGCS(ctx, cfg.Bucket)
	}
	log.Info().Str("dir", cfg.StoreDir).Msg("Store: local directory")
	return store.NewLocal(cfg.StoreDir)
}
