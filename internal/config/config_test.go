package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from an empty directory so no stray .env is read.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SODA_BASE_URL", "https://db.example.com/ords/admin/soda/latest")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, SourceSODA, cfg.Source)
	assert.Equal(t, "random", cfg.Selection)
	assert.Equal(t, "standard", cfg.Scoring)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, uint(1), cfg.FetchRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.FetchRetryDelay)
	assert.Equal(t, "Wordle", cfg.SODA.Collection)
	assert.Equal(t, "words", cfg.Mongo.Collection)
	assert.Equal(t, "documents", cfg.SQLite.Table)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("WORDLE_SOURCE=file\nWORDS_FILE=/tmp/words.txt\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("WORDLE_SOURCE")
		os.Unsetenv("WORDS_FILE")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, SourceFile, cfg.Source)
	assert.Equal(t, "/tmp/words.txt", cfg.File.Path)
}

func TestValidate(t *testing.T) {
	base := Config{FetchTimeout: time.Second}

	t.Run("missing soda url", func(t *testing.T) {
		c := base
		c.Source = SourceSODA
		assert.ErrorContains(t, c.Validate(), "SODA_BASE_URL")
	})
	t.Run("missing mongo uri", func(t *testing.T) {
		c := base
		c.Source = SourceMongo
		assert.ErrorContains(t, c.Validate(), "MONGO_URI")
	})
	t.Run("unknown source", func(t *testing.T) {
		c := base
		c.Source = "oracle"
		assert.ErrorContains(t, c.Validate(), "unknown WORDLE_SOURCE")
	})
	t.Run("zero timeout", func(t *testing.T) {
		c := Config{Source: SourceFile, File: File{Path: "words.txt"}}
		assert.Error(t, c.Validate())
	})
	t.Run("sqlite ok", func(t *testing.T) {
		c := base
		c.Source = SourceSQLite
		c.SQLite = SQLite{Path: "wordle.db", Table: "documents"}
		assert.NoError(t, c.Validate())
	})
}
