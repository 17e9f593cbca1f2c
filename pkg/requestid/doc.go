// Package requestid tags every HTTP request with a correlation id.
//
// Middleware reuses a client-supplied X-Request-ID header when it is 1 to 128
// characters of letters, digits, '-' and '_'; otherwise it generates a UUIDv7.
// The id is stored in the request context and echoed in the response header,
// and the API includes it in error bodies so a failed request can be matched
// to its log lines.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	log.InfoContext(r.Context(), "curp issued") // carries request_id
package requestid
