package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Site configures the public website server.
type Site struct {
	Port            string
	Environment     string
	HousesAPIURL    string
	RenderWait      time.Duration // how long a page view waits for live houses
	ClientTimeout   time.Duration
	ShutdownTimeout time.Duration
}

// API configures the houses API server.
type API struct {
	Port            string
	Environment     string
	ProjectID       string // empty selects the in-memory repository
	Collection      string
	Bucket          string // empty selects the local store
	StoreDir        string
	CacheDir        string
	CacheTTL        time.Duration
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

// LoadSite reads the site configuration from the environment and an
// optional .env file in the working directory.
func LoadSite() (*Site, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	var errs []error
	cfg := &Site{
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		HousesAPIURL:    getEnv("HOUSES_API_URL", "http://localhost:8000"),
		RenderWait:      getEnvDuration("HOUSES_RENDER_WAIT", 2*time.Second, &errs),
		ClientTimeout:   getEnvDuration("HOUSES_CLIENT_TIMEOUT", 30*time.Second, &errs),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second, &errs),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid site configuration: %w", err)
	}
	return cfg, nil
}

func (c *Site) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	u, err := url.Parse(c.HousesAPIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("houses API URL %q is not an absolute URL", c.HousesAPIURL)
	}
	if c.RenderWait < 0 {
		return errors.New("render wait must not be negative")
	}
	if c.ClientTimeout <= 0 {
		return errors.New("client timeout must be positive")
	}
	return nil
}

// LoadAPI reads the houses API configuration from the environment and an
// optional .env file in the working directory.
func LoadAPI() (*API, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	var errs []error
	cfg := &API{
		Port:            getEnv("PORT", "8000"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		ProjectID:       getEnv("GCP_PROJECT_ID", ""),
		Collection:      getEnv("FIRESTORE_COLLECTION", "houses"),
		Bucket:          getEnv("GCS_BUCKET", ""),
		StoreDir:        getEnv("STORE_DIR", "disk"),
		CacheDir:        getEnv("CACHE_DIR", "cache"),
		CacheTTL:        getEnvDuration("CACHE_TTL", 5*time.Minute, &errs),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "*")),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second, &errs),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid API configuration: %w", err)
	}
	return cfg, nil
}

func (c *API) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.ProjectID != "" && c.Collection == "" {
		return errors.New("firestore collection is required when a project is set")
	}
	if c.Bucket == "" && c.StoreDir == "" {
		return errors.New("either a GCS bucket or a store directory is required")
	}
	if c.CacheTTL < 0 {
		return errors.New("cache TTL must not be negative")
	}
	return nil
}

func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading .env file: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// getEnvDuration accepts Go durations ("1500ms") or whole seconds ("30").
func getEnvDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid duration %q", key, value))
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
