package user

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockStore(t *testing.T) (*PGStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPGStore(db), mock
}

func TestPGStoreList(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "email", "name", "role", "password"}).
		AddRow("u1", "a@mail.com", "a", "admin", "pw-a").
		AddRow("u2", "b@mail.com", "b", "user", "pw-b")
	mock.ExpectQuery("select id, email, name, role, password from users order by id asc").
		WillReturnRows(rows)

	users, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ID != "u1" || users[1].Role != "user" {
		t.Fatalf("unexpected rows: %+v", users)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGStoreFindByID(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "email", "name", "role", "password"}).
		AddRow("u1", "a@mail.com", "a", "admin", "pw-a")
	mock.ExpectQuery(`select id, email, name, role, password from users where id=\$1`).
		WithArgs("u1").
		WillReturnRows(rows)

	u, err := store.FindByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if u.Email != "a@mail.com" || u.Password != "pw-a" {
		t.Fatalf("unexpected record: %+v", u)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGStoreFindByIDNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`select id, email, name, role, password from users where id=\$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := store.FindByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGStoreFindByEmail(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "email", "name", "role", "password"}).
		AddRow("u1", "a@mail.com", "a", "admin", "pw-a")
	mock.ExpectQuery(`select id, email, name, role, password from users where lower\(email\)=lower\(\$1\)`).
		WithArgs("A@mail.com").
		WillReturnRows(rows)

	u, err := store.FindByEmail(context.Background(), "A@mail.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if u.ID != "u1" {
		t.Fatalf("unexpected record: %+v", u)
	}
}

func TestCredentialMatches(t *testing.T) {
	c := Credential("test")
	if !c.Matches("test") {
		t.Fatal("expected match")
	}
	if c.Matches("Test") || c.Matches("") || c.Matches("test ") {
		t.Fatal("credential comparison must be exact")
	}
}
