// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown, and provides liveness and readiness handlers.
//
//	srv := httpserver.New(cfg, log)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run returns when ctx is cancelled or the process receives SIGINT or
// SIGTERM. Listen failures wrap ErrStart and shutdown failures wrap
// ErrShutdown.
package httpserver
