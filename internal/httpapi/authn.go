package httpapi

import (
	"errors"
	"net/http"

	"usergate.org/internal/auth"
	"usergate.org/internal/obs"
)

var publicPaths = []string{
	"/auth/login",
	"/auth/logout",
	"/metrics",
	"/healthz",
	"/readyz",
	"/v1/info",
	"/",
}

// withAuth is the single authentication gate. Every non-public route gets a
// verified principal in its context or a 401 before the handler runs.
// Authorization failures are a separate concern and answer 403 later.
func (a *API) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		principal, err := a.codec.Authenticate(r.Header.Get("Cookie"))
		if err != nil {
			obs.AuthFailure(rejectionReason(err))
			w.Header().Set("WWW-Authenticate", `Cookie realm="usergate"`)
			writeError(w, r, http.StatusUnauthorized, rejectionReason(err))
			return
		}

		ctx := auth.ContextWithPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// rejectionReason maps authentication errors to stable wire strings. Every
// reason answers 401; the split exists for operators, not callers.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingCredential):
		return "missing credential"
	case errors.Is(err, auth.ErrIssuerMismatch):
		return "issuer mismatch"
	case errors.Is(err, auth.ErrExpired):
		return "token expired"
	default:
		return "invalid token"
	}
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	return false
}
