package auth

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// APIKeyHeader carries the API credential for programmatic access.
const APIKeyHeader = "X-API-Key"

// realm is the challenge realm presented to browsers on the UI routes.
const realm = "shortlink"

// RequireBasic gates a handler behind the UI credential scheme. Failing or
// absent credentials yield 401 with a Basic challenge so a browser can
// prompt; this is a terminal response, not a recoverable error.
func RequireBasic(creds Credentials) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, _ := r.BasicAuth()

			if !creds.VerifyUI(username, password) {
				w.Header().Set("WWW-Authenticate", `Basic realm="`+realm+`"`)
				http.Error(w, "authentication required", http.StatusUnauthorized)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAPIKey gates huma operations behind the API credential scheme.
// Failing or absent keys yield a structured 401 JSON body, since API
// clients expect a machine-readable error rather than a browser prompt.
func RequireAPIKey(api huma.API, creds Credentials) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !creds.VerifyAPIKey(ctx.Header(APIKeyHeader)) {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or missing api key")

			return
		}

		next(ctx)
	}
}
