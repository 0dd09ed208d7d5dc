// Package logger builds *slog.Logger values for authjar services and offers
// attribute helpers with consistent keys.
//
// New takes functional options selecting the output format (json or text),
// level, static attributes and ContextExtractor callbacks. Extractors run on
// every record through LogHandlerDecorator, which is how request scoped
// values such as a request id reach log lines without being threaded through
// call sites.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "authjar"),
//	    logger.WithContextValue("request_id", requestIDKey),
//	)
//	log.DebugContext(ctx, "auth cookie rejected",
//	    logger.Component("authcookie"),
//	    logger.Reason(err),
//	)
//
// Config can be loaded from the environment (LOG_LEVEL, LOG_FORMAT,
// APP_ENV, SERVICE_NAME) and turned into options with Config.Options.
//
// Secret material never goes through these helpers: there is no attribute
// for keys or digests, and Reason records only the error text. Attributes
// that still carry one under a key listed in RedactedKeys (digest, secret,
// signing_key, cookie) are replaced with Redacted by the decorator.
package logger
