package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"usergate.org/internal/audit"
	"usergate.org/internal/auth"
	"usergate.org/internal/user"
)

func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "missing credential")
		return
	}
	if !principal.CanListUsers() {
		a.denied(w, r, principal, "users.list", "")
		return
	}

	users, err := a.users.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if users == nil {
		users = []user.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (a *API) handleUserByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "missing credential")
		return
	}

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/users/"), "/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	if id == "me" {
		id = principal.Subject
	}

	// The policy check comes before the lookup so a forbidden caller learns
	// nothing about whether the id exists.
	if !principal.CanViewUser(id) {
		a.denied(w, r, principal, "users.get", id)
		return
	}

	record, err := a.users.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "user not found")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (a *API) denied(w http.ResponseWriter, r *http.Request, principal auth.Principal, op, target string) {
	fields := map[string]any{
		"operation": op,
		"role":      principal.Role,
	}
	if target != "" {
		fields["target"] = target
	}
	_ = audit.LogEvent(r.Context(), "authz.denied", fields)
	writeError(w, r, http.StatusForbidden, "forbidden")
}
