package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"NOTEPAD_DATA_DIR", "NOTEPAD_BACKEND", "NOTEPAD_LOG_LEVEL", "NOTEPAD_LOG_FILE",
		"NOTEPAD_THEME", "NOTEPAD_NO_COLOR", "NOTEPAD_S3_ENDPOINT", "NOTEPAD_S3_REGION",
		"NOTEPAD_S3_BUCKET", "NOTEPAD_S3_PREFIX", "NOTEPAD_S3_ACCESS_KEY_ID",
		"NOTEPAD_S3_SECRET_ACCESS_KEY", "NOTEPAD_S3_USE_PATH_STYLE",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("NOTEPAD_DATA_DIR", dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "classic", cfg.Theme)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_dir: /srv/notes
backend: sqlite
log_level: debug
theme: neon
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/notes", cfg.DataDir)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "neon", cfg.Theme)
	// untouched keys keep their defaults
	assert.Equal(t, "notepad/", cfg.S3.Prefix)
}

func TestLoadDefaultPathInDataDir(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("NOTEPAD_DATA_DIR", dir)
	require.NoError(t, os.WriteFile(DefaultPath(dir), []byte("theme: mono\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.Theme)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: sqlite\n"), 0o644))

	t.Setenv("NOTEPAD_BACKEND", "s3")
	t.Setenv("NOTEPAD_S3_BUCKET", "my-notes")
	t.Setenv("NOTEPAD_S3_USE_PATH_STYLE", "true")
	t.Setenv("NOTEPAD_NO_COLOR", "1")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendS3, cfg.Backend)
	assert.Equal(t, "my-notes", cfg.S3.Bucket)
	assert.True(t, cfg.S3.UsePathStyle)
	assert.True(t, cfg.NoColor)
}

func TestBadBoolEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("NOTEPAD_DATA_DIR", t.TempDir())
	t.Setenv("NOTEPAD_NO_COLOR", "maybe")

	_, err := Load("")
	assert.ErrorContains(t, err, "NOTEPAD_NO_COLOR")
}

func TestMalformedFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: [file\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantErrs int
	}{
		{"defaults are valid", func(c *Config) {}, 0},
		{"memory backend needs nothing", func(c *Config) { c.Backend = BackendMemory; c.DataDir = "" }, 0},
		{"unknown backend", func(c *Config) { c.Backend = "floppy" }, 1},
		{"file backend without dir", func(c *Config) { c.DataDir = "" }, 1},
		{"s3 without bucket", func(c *Config) { c.Backend = BackendS3 }, 1},
		{"s3 half credentials", func(c *Config) {
			c.Backend = BackendS3
			c.S3.Bucket = "b"
			c.S3.AccessKeyID = "key"
		}, 1},
		{"everything wrong", func(c *Config) {
			c.Backend = "?"
			c.LogLevel = "loud"
			c.Theme = "pink"
		}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErrs == 0 {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Len(t, verr.Errors, tt.wantErrs)
		})
	}
}
