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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("file values", func(t *testing.T) {
		path := writeConfig(t, `
api:
  key: file-key
  timeout: 5s
batch:
  concurrency: 8
logging:
  level: debug
  format: json
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "file-key", cfg.API.Key)
		assert.Equal(t, 5*time.Second, cfg.API.Timeout)
		assert.Equal(t, "https://www.googleapis.com/youtube/v3/", cfg.API.BaseURL)
		assert.Equal(t, 8, cfg.Batch.Concurrency)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
		assert.Equal(t, "s0up4200/ytube", cfg.Update.Repository)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("YTUBE_API_KEY", "env-key")
		t.Setenv("YTUBE_LOGGING_LEVEL", "warn")

		cfg, err := Load(writeConfig(t, "api:\n  key: file-key\n"))
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.API.Key)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config")
	})

	t.Run("defaults without any file", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("HOME", t.TempDir())

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Empty(t, cfg.API.Key)
		assert.Equal(t, 30*time.Second, cfg.API.Timeout)
		assert.Equal(t, 5, cfg.Batch.Concurrency)
		assert.Equal(t, "console", cfg.Logging.Format)
	})

	t.Run("dotenv file", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv("HOME", t.TempDir())
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("YTUBE_API_KEY=dotenv-key\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("YTUBE_API_KEY") })

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "dotenv-key", cfg.API.Key)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			API: APIConfig{
				Key:     "valid-api-key",
				BaseURL: "https://www.googleapis.com/youtube/v3/",
				Timeout: 30 * time.Second,
			},
			Batch:   BatchConfig{Concurrency: 5},
			Logging: LoggingConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:   "empty key is allowed",
			mutate: func(c *Config) { c.API.Key = "" },
		},
		{
			name:    "placeholder key",
			mutate:  func(c *Config) { c.API.Key = "your-api-key-here" },
			wantErr: "api.key",
		},
		{
			name:    "missing base url",
			mutate:  func(c *Config) { c.API.BaseURL = "" },
			wantErr: "api.base_url",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.API.Timeout = 0 },
			wantErr: "api.timeout",
		},
		{
			name:    "concurrency too high",
			mutate:  func(c *Config) { c.Batch.Concurrency = 50 },
			wantErr: "batch.concurrency",
		},
		{
			name:    "invalid level",
			mutate:  func(c *Config) { c.Logging.Level = "trace" },
			wantErr: "invalid logging level",
		},
		{
			name:    "invalid format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
