package httpapi

import (
	"net/http"
	"strings"
	"testing"
)

func TestLoginIssuesSessionCookie(t *testing.T) {
	client, _ := newTestAPI(t)

	resp := client.post("/auth/login", map[string]string{
		"email":    "admin@mail.com",
		"password": "test",
	}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "usergate_session" {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("expected usergate_session cookie")
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be HttpOnly")
	}
	if cookie.MaxAge <= 0 {
		t.Fatalf("expected positive Max-Age, got %d", cookie.MaxAge)
	}

	var record map[string]any
	decodeBody(t, resp, &record)
	if record["_id"] != adminID {
		t.Fatalf("unexpected _id: %v", record["_id"])
	}

	// The issued cookie works against protected routes.
	me := client.get("/users/me", cookie.Name+"="+cookie.Value)
	defer me.Body.Close()
	if me.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with issued cookie, got %d", me.StatusCode)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	client, _ := newTestAPI(t)

	wrongPassword := client.post("/auth/login", map[string]string{
		"email":    "admin@mail.com",
		"password": "nope",
	}, "")
	unknownEmail := client.post("/auth/login", map[string]string{
		"email":    "ghost@mail.com",
		"password": "nope",
	}, "")

	if wrongPassword.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", wrongPassword.StatusCode)
	}
	if unknownEmail.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unknown email: expected 401, got %d", unknownEmail.StatusCode)
	}

	// Identical error bodies: the response must not reveal whether the
	// email exists.
	var a, b map[string]any
	decodeBody(t, wrongPassword, &a)
	decodeBody(t, unknownEmail, &b)
	if a["error"] != b["error"] {
		t.Fatalf("mismatched error bodies: %v vs %v", a["error"], b["error"])
	}
}

func TestLoginValidatesRequestBody(t *testing.T) {
	client, _ := newTestAPI(t)

	resp := client.post("/auth/login", map[string]string{"email": "admin@mail.com"}, "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestLogoutExpiresCookie(t *testing.T) {
	client, _ := newTestAPI(t)

	resp := client.post("/auth/logout", map[string]string{}, "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	setCookie := resp.Header.Get("Set-Cookie")
	if !strings.Contains(setCookie, "usergate_session=") {
		t.Fatalf("expected session cookie reset, got %q", setCookie)
	}
	for _, c := range resp.Cookies() {
		if c.Name == "usergate_session" && c.MaxAge >= 0 {
			t.Fatalf("expected expired cookie, got MaxAge %d", c.MaxAge)
		}
	}
}
