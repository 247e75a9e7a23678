package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, StoreBackendMemory, cfg.Store.Backend)
		assert.Equal(t, 8*time.Hour, cfg.JWT.TTL)
		assert.Equal(t, "SAO PAULO", cfg.Pix.MerchantCity)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("STORE_BACKEND", "DynamoDB")
		t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
		t.Setenv("JWT_TTL", "30m")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.App.Port)
		assert.Equal(t, StoreBackendDynamoDB, cfg.Store.Backend)
		assert.Equal(t, "http://localhost:8000", cfg.DynamoDB.Endpoint)
		assert.Equal(t, 30*time.Minute, cfg.JWT.TTL)
	})

	t.Run("rejects unknown backend", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "postgres")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("production requires a real secret", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "")
		t.Setenv("APP_ENV", "production")
		_, err := Load()
		require.Error(t, err)

		t.Setenv("JWT_SECRET", "a-very-long-production-secret")
		_, err = Load()
		require.NoError(t, err)
	})
}
