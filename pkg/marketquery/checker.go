package marketquery

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/marketparams/pkg/logger"
	"github.com/dmitrymomot/marketparams/pkg/validator"
)

// Checker validates queries and logs rejections.
type Checker struct {
	log *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.log = l
		}
	}
}

func NewChecker(opts ...Option) *Checker {
	c := &Checker{log: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.Component("marketquery"))
	return c
}

// Check validates q. Rejections are logged at debug level with the failing
// fields; the error is returned unchanged.
func (c *Checker) Check(ctx context.Context, q Query) error {
	err := q.Validate()
	if err == nil {
		return nil
	}

	c.log.DebugContext(ctx, "query rejected",
		logger.Symbol(q.Symbol),
		logger.Fields(validator.ExtractValidationErrors(err).Fields()),
		logger.Error(err),
	)
	return err
}
