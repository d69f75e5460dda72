package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("GIN_MODE", "")

	cfg := Load()

	assert.Equal(t, "http://localhost:8080/api-now-salon", cfg.APIBaseURL)
	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, ":3000", cfg.Addr())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://backend:8080/api-now-salon")
	t.Setenv("SERVER_PORT", "4000")

	cfg := Load()

	assert.Equal(t, "http://backend:8080/api-now-salon", cfg.APIBaseURL)
	assert.Equal(t, ":4000", cfg.Addr())
}
