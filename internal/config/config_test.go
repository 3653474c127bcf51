package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "jobPortal", cfg.Database.Name)
	assert.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, "uploads", cfg.Uploads.Dir)
	assert.Equal(t, int64(10*1024*1024), cfg.Uploads.MaxBodySize)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DB_USER", "portal")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("UPLOAD_DIR", "/tmp/cvs")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "portal", cfg.Database.User)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "/tmp/cvs", cfg.Uploads.Dir)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigNonNumericPortIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
}

func TestLoadConfigYAMLWithEnvExpansion(t *testing.T) {
	t.Setenv("TEST_CLUSTER_HOST", "cluster.example.net")

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 9000
database:
  cluster_host: ${TEST_CLUSTER_HOST}
  name: portalTest
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "cluster.example.net", cfg.Database.ClusterHost)
	assert.Equal(t, "portalTest", cfg.Database.Name)
	// Untouched sections keep their defaults.
	assert.Equal(t, "uploads", cfg.Uploads.Dir)
}

func TestLoadConfigMissingFileFallsBack(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
}
