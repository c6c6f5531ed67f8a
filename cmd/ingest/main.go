package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"daysoflight/internal/firestore"
	"daysoflight/internal/model"
	"daysoflight/internal/repo"
	"daysoflight/internal/server"
	"daysoflight/internal/store"
)

func main() {
	seedPath := flag.String("seed", "", "Read the seed from this JSON file and save it to the store")
	dryRun := flag.Bool("dry-run", false, "Load the seed into memory only; write nothing")
	flag.Parse()

	server.SetupLogger(os.Getenv("ENVIRONMENT"))

	if err := run(context.Background(), *seedPath, *dryRun); err != nil {
		log.Error().Err(err).Msg("Ingestion failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, seedPath string, dryRun bool) error {
	s, err := openStore(ctx)
	if err != nil {
		return err
	}
	if closer, ok := s.(io.Closer); ok {
		defer closer.Close()
	}

	houses, err := loadSeed(s, seedPath, dryRun)
	if err != nil {
		return err
	}
	log.Info().Int("houses", len(houses)).Msg("Seed loaded")

	target, closeTarget, err := openTarget(ctx, dryRun)
	if err != nil {
		return err
	}
	defer closeTarget()

	batchID := time.Now().UTC().Format("20060102-150405")
	log.Info().Str("batch_id", batchID).Bool("dry_run", dryRun).Msg("Starting ingestion")

	if err := target.ReplaceHouses(ctx, houses, batchID); err != nil {
		return fmt.Errorf("storing houses: %w", err)
	}

	stored, err := target.ListHouses(ctx)
	if err != nil {
		return fmt.Errorf("reading back houses: %w", err)
	}
	active := 0
	for _, h := range stored {
		if h.IsActive {
			active++
			fmt.Printf("  %2d  %-22s %-12s %s\n", h.Order, h.Name, h.Day, h.Time)
		}
	}

	log.Info().Int("houses", len(stored)).Int("active", active).Msg("Ingestion complete")
	fmt.Println("Ingestion completed successfully")
	return nil
}

func openStore(ctx context.Context) (store.Store, error) {
	if bucket := os.Getenv("GCS_BUCKET"); bucket != "" {
		gcsStore, err := store.NewGCS(ctx, bucket)
		if err != nil {
			return nil, fmt.Errorf("initializing GCS store: %w", err)
		}
		return gcsStore, nil
	}

	dir := os.Getenv("STORE_DIR")
	if dir == "" {
		dir = "disk"
	}
	localStore, err := store.NewLocal(dir)
	if err != nil {
		return nil, fmt.Errorf("initializing local store: %w", err)
	}
	return localStore, nil
}

// loadSeed reads the seed file when one is given and saves it to the store,
// so the memory-backed API starts from the same houses. Without a file the
// seed comes from the store.
func loadSeed(s store.Store, path string, dryRun bool) ([]model.House, error) {
	if path == "" {
		houses, fromStore, err := repo.LoadSeed(s)
		if err != nil {
			return nil, err
		}
		if !fromStore {
			log.Warn().Msg("Store has no house seed, using built-in defaults")
		}
		return houses, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	houses, err := repo.DecodeSeed(data)
	if err != nil {
		return nil, err
	}
	if !dryRun {
		if err := repo.SaveSeed(s, houses); err != nil {
			return nil, err
		}
		log.Info().Str("key", repo.SeedKey).Msg("Seed saved to store")
	}
	return houses, nil
}

func openTarget(ctx context.Context, dryRun bool) (repo.Repository, func(), error) {
	if dryRun {
		return repo.NewMemory(nil), func() {}, nil
	}

	projectID := os.Getenv("GCP_PROJECT_ID")
	if projectID == "" {
		return nil, nil, errors.New("GCP_PROJECT_ID environment variable is required")
	}
	collection := os.Getenv("FIRESTORE_COLLECTION")
	if collection == "" {
		collection = "houses"
	}

	fsClient, err := firestore.New(ctx, projectID, collection)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing Firestore client: %w", err)
	}
	log.Info().Str("project", projectID).Str("collection", collection).Msg("Target: Firestore")
	return fsClient, func() { fsClient.Close() }, nil
}
