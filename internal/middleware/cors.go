package middleware

import (
	"net/http"
	"slices"
	"strings"
)

const (
	corsAllowMethods  = "GET, HEAD, OPTIONS"
	corsAllowHeaders  = "Content-Type, Range, " + RequestIDHeader
	corsExposeHeaders = "Content-Length, Content-Range, " + RequestIDHeader
)

// CORSMiddleware creates a CORS middleware with the specified allowed origins.
// Preflight requests are answered here and never reach the router.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	wildcard := slices.Contains(allowedOrigins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := w.Header()

			if origin := r.Header.Get("Origin"); origin != "" {
				switch {
				case wildcard:
					header.Set("Access-Control-Allow-Origin", "*")
				case originAllowed(origin, allowedOrigins):
					header.Set("Access-Control-Allow-Origin", origin)
					header.Add("Vary", "Origin")
				}
			}

			header.Set("Access-Control-Allow-Methods", corsAllowMethods)
			header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			header.Set("Access-Control-Expose-Headers", corsExposeHeaders)
			header.Set("Access-Control-Max-Age", "3600")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// originAllowed reports whether origin matches one of the configured origins, ignoring case
func originAllowed(origin string, allowedOrigins []string) bool {
	return slices.ContainsFunc(allowedOrigins, func(allowed string) bool {
		return strings.EqualFold(origin, allowed)
	})
}
