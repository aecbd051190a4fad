// Package controller contains the HTTP middlewares and debug handlers shared by
// the API and the dashboard.
//
// Middlewares:
//   - WithCORS: answers preflight requests and reflects allowed origins.
//   - WithLogger: request ID, request-scoped logger and access log.
//   - WithSession: signed session cookie carrying an opaque session ID.
//
// Handlers:
//   - RegisterPprof: mounts net/http/pprof under /debug/pprof/.
package controller
