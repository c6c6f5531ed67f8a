package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSiteDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"PORT", "ENVIRONMENT", "HOUSES_API_URL", "HOUSES_RENDER_WAIT", "HOUSES_CLIENT_TIMEOUT", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadSite()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "http://localhost:8000", cfg.HousesAPIURL)
	assert.Equal(t, 2*time.Second, cfg.RenderWait)
	assert.Equal(t, 30*time.Second, cfg.ClientTimeout)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoadSiteOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("HOUSES_API_URL", "https://api.daysoflight.org")
	t.Setenv("HOUSES_RENDER_WAIT", "750ms")
	t.Setenv("HOUSES_CLIENT_TIMEOUT", "10")

	cfg, err := LoadSite()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://api.daysoflight.org", cfg.HousesAPIURL)
	assert.Equal(t, 750*time.Millisecond, cfg.RenderWait)
	assert.Equal(t, 10*time.Second, cfg.ClientTimeout)
}

func TestLoadSiteRejectsBadValues(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("HOUSES_RENDER_WAIT", "soon")
	_, err := LoadSite()
	assert.ErrorContains(t, err, "HOUSES_RENDER_WAIT")

	t.Setenv("HOUSES_RENDER_WAIT", "")
	t.Setenv("HOUSES_API_URL", "localhost")
	_, err = LoadSite()
	assert.ErrorContains(t, err, "not an absolute URL")

	t.Setenv("HOUSES_API_URL", "")
	for _, v := range []string{"0", "-5s"} {
		t.Setenv("HOUSES_CLIENT_TIMEOUT", v)
		_, err = LoadSite()
		assert.ErrorContains(t, err, "client timeout must be positive", v)
	}
}

func TestLoadAPI(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"PORT", "GCP_PROJECT_ID", "FIRESTORE_COLLECTION", "GCS_BUCKET", "STORE_DIR", "CACHE_DIR", "CACHE_TTL"} {
		t.Setenv(k, "")
	}
	t.Setenv("CORS_ORIGINS", "https://daysoflight.org, http://localhost:8080,")

	cfg, err := LoadAPI()
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Port)
	assert.Empty(t, cfg.ProjectID)
	assert.Equal(t, "houses", cfg.Collection)
	assert.Equal(t, "disk", cfg.StoreDir)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, []string{"https://daysoflight.org", "http://localhost:8080"}, cfg.CORSOrigins)
}

func TestAPIValidate(t *testing.T) {
	cfg := API{Port: "8000", StoreDir: "disk"}
	assert.NoError(t, cfg.Validate())

	cfg.CacheTTL = -time.Second
	assert.Error(t, cfg.Validate())

	cfg = API{Port: "8000"}
	assert.ErrorContains(t, cfg.Validate(), "store directory")
}
