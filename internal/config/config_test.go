package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "service:\n  name: trader-pulse\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "trader-pulse", cfg.Service.Name)
	assert.Equal(t, defaultServicePort, cfg.Service.Port)
	assert.Equal(t, defaultMinPosts, cfg.Analysis.MinPosts)
	assert.Equal(t, defaultBatchMinPosts, cfg.Analysis.BatchMinPosts)
	assert.Equal(t, float64(defaultCandidateThreshold), cfg.Analysis.CandidateThreshold)
	assert.Equal(t, defaultDBHost, cfg.Database.Host)
	assert.Equal(t, defaultESIndex, cfg.Elasticsearch.Index)
	assert.Equal(t, defaultLogLevel, cfg.Logging.Level)
}

func TestLoadParsesYAML(t *testing.T) {
	path := writeConfig(t, `
service:
  port: 9000
  concurrency: 4
analysis:
  min_posts: 2
  batch_min_posts: 8
  candidate_threshold: 55
database:
  enabled: true
  host: db.internal
  port: 6432
elasticsearch:
  enabled: true
  timeout: 10s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Service.Port)
	assert.Equal(t, 4, cfg.Service.Concurrency)
	assert.Equal(t, 2, cfg.Analysis.MinPosts)
	assert.Equal(t, 8, cfg.Analysis.BatchMinPosts)
	assert.InDelta(t, 55.0, cfg.Analysis.CandidateThreshold, 0.001)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.True(t, cfg.Elasticsearch.Enabled)
	assert.Equal(t, 10*time.Second, cfg.Elasticsearch.Timeout)
}

func TestEnvOverridesWin(t *testing.T) {
	path := writeConfig(t, "database:\n  host: from-yaml\n  port: 5433\n")

	t.Setenv("POSTGRES_HOST", "from-env")
	t.Setenv("TRADER_PULSE_PORT", "8123")
	t.Setenv("ELASTICSEARCH_ENABLED", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, 8123, cfg.Service.Port)
	assert.True(t, cfg.Elasticsearch.Enabled)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "service: [not a map")
	_, err := Load(path)
	require.Error(t, err)
}
