package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "finhealth.db", cfg.Store.DatabaseURL)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 20.0, cfg.Server.RateLimitRPS)
	assert.Equal(t, 40, cfg.Server.RateLimitBurst)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 5, cfg.Recommend.MaxRecommendations)
	assert.Equal(t, 5, cfg.Batch.Concurrency)

	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FINHEALTH_SERVER_PORT", "9090")
	t.Setenv("FINHEALTH_STORE_DRIVER", "postgres")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Store.Driver)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Store:     StoreConfig{Driver: "sqlite"},
			Server:    ServerConfig{Port: 8080, RateLimitRPS: 20},
			Recommend: RecommendConfig{MaxRecommendations: 5},
			Batch:     BatchConfig{Concurrency: 4},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("bad driver", func(t *testing.T) {
		c := valid()
		c.Store.Driver = "oracle"
		err := c.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store.driver")
	})

	t.Run("bad port", func(t *testing.T) {
		c := valid()
		c.Server.Port = 70000
		require.Error(t, c.Validate())
	})

	t.Run("negative max recommendations", func(t *testing.T) {
		c := valid()
		c.Recommend.MaxRecommendations = -1
		require.Error(t, c.Validate())
	})

	t.Run("zero concurrency", func(t *testing.T) {
		c := valid()
		c.Batch.Concurrency = 0
		require.Error(t, c.Validate())
	})
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
	require.Error(t, InitLogger(LogConfig{Level: "shout", Format: "json"}))
}
