// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for tag-driven parsing. Each struct type is
// parsed once and cached; ResetCache clears the cache in tests.
//
//	var cfg config.LogConfig
//	config.MustLoad(&cfg)
//	log := cfg.Logger()
package config
