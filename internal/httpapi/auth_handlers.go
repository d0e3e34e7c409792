package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"usergate.org/internal/audit"
	"usergate.org/internal/user"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		writeError(w, r, http.StatusBadRequest, "email and password are required")
		return
	}

	record, err := a.users.FindByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			a.loginDenied(w, r, email)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if !record.Password.Matches(req.Password) {
		a.loginDenied(w, r, email)
		return
	}

	token, expiresAt, err := a.codec.Issue(record.ID, record.Role)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "token issuance failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     a.codec.CookieName(),
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(a.codec.TTL() / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	_ = audit.LogEvent(r.Context(), "auth.login", map[string]any{
		"user_id":    record.ID,
		"role":       record.Role,
		"expires_at": expiresAt.Format(time.RFC3339),
	})
	writeJSON(w, http.StatusOK, record)
}

// loginDenied answers the same way for unknown emails and wrong passwords.
func (a *API) loginDenied(w http.ResponseWriter, r *http.Request, email string) {
	_ = audit.LogEvent(r.Context(), "auth.login.denied", map[string]any{
		"email": email,
	})
	writeError(w, r, http.StatusUnauthorized, "invalid credentials")
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     a.codec.CookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}
