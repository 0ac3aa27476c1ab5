package products

import (
	"net/http"

	"ProductHub/pkg/kit"
)

const apiKeyHeader = "X-API-Key"

// RequireAPIKey guards the write routes. The header must equal the
// configured key exactly; every request authenticates on its own, there are
// no sessions or tokens.
func RequireAPIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" || r.Header.Get(apiKeyHeader) != key {
				kit.WriteError(w, kit.Unauthorized("invalid or missing API key"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
