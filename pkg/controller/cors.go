package controller

import (
	"net/http"
	"slices"
)

// CORSOptions lists the origins allowed to call the API with credentials. A
// single "*" allows any origin.
type CORSOptions struct {
	AllowedOrigins []string
}

func (o CORSOptions) allows(origin string) bool {
	return slices.Contains(o.AllowedOrigins, "*") || slices.Contains(o.AllowedOrigins, origin)
}

// WithCORS returns a middleware that echoes an allowed Origin back and
// short-circuits OPTIONS preflight requests with 204 No Content. The session
// cookie is only usable cross-origin when the origin is echoed, so "*" is never
// sent together with credentials.
func WithCORS(opts CORSOptions, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Origin")

		origin := r.Header.Get("Origin")
		if origin != "" && opts.allows(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Headers",
				"Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Request-Id")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
