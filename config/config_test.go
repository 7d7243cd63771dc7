package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "session_token", cfg.Session.CookieName)
	assert.Equal(t, 5, cfg.RateLimit.LoginAttempts)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.LoginWindow)
	assert.Empty(t, cfg.AMQP.URL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	require.NoError(t, os.WriteFile(path, []byte("redis_db: 3\njwt_issuer: from-file\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "from-file", cfg.JWT.Issuer)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "development defaults", mutate: func(*Config) {}},
		{
			name: "production with default secret",
			mutate: func(c *Config) {
				c.Server.Environment = "production"
			},
			wantErr: true,
		},
		{
			name: "production with secret",
			mutate: func(c *Config) {
				c.Server.Environment = "production"
				c.JWT.Secret = "a-real-secret"
			},
		},
		{
			name:    "zero session ttl",
			mutate:  func(c *Config) { c.Session.TTL = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(cfg)

			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}
