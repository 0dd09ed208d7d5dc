// Package requestid tags every HTTP request with a correlation identifier.
//
// Middleware reuses a well-formed X-Request-ID sent by the client or
// generates a UUIDv4, stores it in the request context and echoes it in the
// response. LoggerExtractor feeds the identifier into logger.New so that
// every record written while serving the request carries it:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
