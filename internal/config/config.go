package config

import (
	"fmt"
	"os"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds all process-wide settings, read from the environment.
type Config struct {
	Port         string `env:"PORT,default=8080"`
	DatabasePath string `env:"DATABASE_PATH,default=recipe-box.db"`
	JWTSecret    string `env:"JWT_SECRET,required"`
	BcryptCost   int    `env:"BCRYPT_COST,default=12"`
}

// Load reads configuration from a .env file (if present) and the
// process environment. The JWT secret is required and must be long
// enough for HMAC-SHA256.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment may be set directly.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}

	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 14 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", cfg.BcryptCost)
	}

	return &cfg, nil
}
