package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL string
	ServerPort string
	GinMode    string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080/api-now-salon"),
		ServerPort: getEnv("SERVER_PORT", "3000"),
		GinMode:    getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
