package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/analysishub/analysishub/internal/config"
	dbgen "github.com/analysishub/analysishub/internal/db/generated"
	"github.com/analysishub/analysishub/internal/testutil"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "analysishub-test"
	cfg.App.Environment = "development"
	cfg.App.Port = 8080
	cfg.App.SecretKey = "test-secret-key"
	return cfg
}

func setupAuth(t *testing.T) *dbgen.Queries {
	t.Helper()
	database := testutil.NewTestDB(t)
	Init(testConfig(), database)
	return database.Queries
}

func createTestUser(t *testing.T, q *dbgen.Queries, username, password string) dbgen.User {
	t.Helper()
	club, err := q.CreateClub(context.Background(), "Test FC")
	if err != nil {
		club, err = q.GetClubByName(context.Background(), "Test FC")
		if err != nil {
			t.Fatalf("resolve club: %v", err)
		}
	}
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user, err := q.CreateUser(context.Background(), dbgen.CreateUserParams{
		Username:     username,
		PasswordHash: hash,
		ClubID:       club.ID,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "analysishub_session" && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestSessionRoundTrip(t *testing.T) {
	q := setupAuth(t)
	user := createTestUser(t, q, "analyst", "secret123")

	rec := httptest.NewRecorder()
	if err := CreateSession(rec, user.ID); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	cookie := sessionCookie(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	resolved, err := UserFromRequest(httptest.NewRecorder(), req)
	if err != nil {
		t.Fatalf("UserFromRequest: %v", err)
	}
	if resolved == nil {
		t.Fatal("expected a user, got nil")
	}
	if resolved.ID != user.ID || resolved.Username != "analyst" {
		t.Errorf("resolved wrong user: %+v", resolved)
	}
	if resolved.ClubName != "Test FC" {
		t.Errorf("club name = %q, want Test FC", resolved.ClubName)
	}
}

func TestTamperedCookieRejected(t *testing.T) {
	q := setupAuth(t)
	user := createTestUser(t, q, "tamper", "secret123")

	rec := httptest.NewRecorder()
	if err := CreateSession(rec, user.ID); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	cookie := sessionCookie(t, rec)
	cookie.Value = cookie.Value + "x"

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	resolved, err := UserFromRequest(httptest.NewRecorder(), req)
	if err != nil {
		t.Fatalf("UserFromRequest: %v", err)
	}
	if resolved != nil {
		t.Fatal("tampered cookie resolved to a user")
	}
}

func TestNewSessionInvalidatesOld(t *testing.T) {
	q := setupAuth(t)
	user := createTestUser(t, q, "rotate", "secret123")

	first := httptest.NewRecorder()
	if err := CreateSession(first, user.ID); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	oldCookie := sessionCookie(t, first)

	second := httptest.NewRecorder()
	if err := CreateSession(second, user.ID); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(oldCookie)
	resolved, err := UserFromRequest(httptest.NewRecorder(), req)
	if err != nil {
		t.Fatalf("UserFromRequest: %v", err)
	}
	if resolved != nil {
		t.Fatal("old session should be invalid after a new login")
	}
}

func TestClearSession(t *testing.T) {
	q := setupAuth(t)
	user := createTestUser(t, q, "leaver", "secret123")

	rec := httptest.NewRecorder()
	if err := CreateSession(rec, user.ID); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	cookie := sessionCookie(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	ClearSession(httptest.NewRecorder(), req)

	check := httptest.NewRequest(http.MethodGet, "/", nil)
	check.AddCookie(cookie)
	resolved, err := UserFromRequest(httptest.NewRecorder(), check)
	if err != nil {
		t.Fatalf("UserFromRequest: %v", err)
	}
	if resolved != nil {
		t.Fatal("session should be gone after ClearSession")
	}
}
