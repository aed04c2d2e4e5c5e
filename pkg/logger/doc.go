// Package logger builds *slog.Logger values through functional options and
// provides attribute helpers with stable keys for state machine logging.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevelName("debug"),
//	    logger.WithComponent("statemachine"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//
//	log.InfoContext(ctx, "state changed",
//	    logger.Profile("default"),
//	    logger.Event("close"),
//	    logger.Transition("open", "closed"),
//	)
//
// # Context extraction
//
// Values registered with WithContextValue or WithContextExtractors are read
// from the context passed to the *Context logging methods on every call.
//
// # Error Handling
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check. WithFormat and WithLevelName panic on invalid input.
package logger
