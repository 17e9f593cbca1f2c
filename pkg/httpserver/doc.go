// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run binds the listener, serves until ctx is cancelled or the process gets
// SIGINT/SIGTERM, then drains in-flight requests within the shutdown timeout.
// Addr blocks until the listener is bound, which lets tests listen on
// "127.0.0.1:0".
//
//	var cfg httpserver.Config // loaded with pkg/config
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// LivenessHandler and ReadinessHandler back the /health/live and
// /health/ready probes. Start and shutdown failures are joined with ErrStart
// and ErrShutdown.
package httpserver
