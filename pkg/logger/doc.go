// Package logger builds log/slog loggers with functional options.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(logger.ParseLevel("debug")),
//	    logger.WithService("marketparams"),
//	)
//	log.Debug("query rejected", logger.Component("marketquery"), logger.Fields(fields))
//
// JSON output at info level is the default. Attribute helpers such as Error
// return an empty Attr for nil input, so no nil check is needed at call sites.
package logger
