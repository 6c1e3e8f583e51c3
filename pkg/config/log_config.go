package config

import (
	"log/slog"

	"github.com/dmitrymomot/marketparams/pkg/logger"
)

// LogConfig holds logger settings.
type LogConfig struct {
	Level   string `env:"LOG_LEVEL" envDefault:"info"`
	Format  string `env:"LOG_FORMAT" envDefault:"json"`
	Service string `env:"SERVICE_NAME" envDefault:"marketparams"`
}

// Logger builds a logger from the config. Extra options are applied last,
// so they can redirect output or override the level. An unknown format panics.
func (c LogConfig) Logger(opts ...logger.Option) *slog.Logger {
	base := []logger.Option{
		logger.WithLevel(logger.ParseLevel(c.Level)),
		logger.WithFormat(logger.Format(c.Format)),
		logger.WithService(c.Service),
	}
	return logger.New(append(base, opts...)...)
}
