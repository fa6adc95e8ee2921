package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// carryCookie copies the response's flash cookie onto a fresh request, the
// way a browser does across a redirect.
func carryCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/players", nil)
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == cookieName {
			req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
		}
	}
	return req
}

func TestAddSingleMessageRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/delete_player/1", nil)

	Add(rec, req, CategorySuccess, "Player deleted.")

	next := carryCookie(t, rec)
	messages := Pop(httptest.NewRecorder(), next)
	if len(messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(messages))
	}
	if messages[0].Category != CategorySuccess || messages[0].Text != "Player deleted." {
		t.Errorf("unexpected message %+v", messages[0])
	}
}

func TestAddTwiceInOneResponseKeepsBoth(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/delete_player/1", nil)

	// A delete handler flashes a file-removal warning and then the success
	// notice on the same response.
	Add(rec, req, CategoryDanger, "Error deleting PDF report file: permission denied")
	Add(rec, req, CategorySuccess, `Player "X" and their report have been deleted.`)

	flashCookies := 0
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == cookieName {
			flashCookies++
		}
	}
	if flashCookies != 1 {
		t.Fatalf("got %d flash Set-Cookie lines, want 1", flashCookies)
	}

	next := carryCookie(t, rec)
	messages := Pop(httptest.NewRecorder(), next)
	if len(messages) != 2 {
		t.Fatalf("got %d messages after redirect, want 2", len(messages))
	}
	if messages[0].Category != CategoryDanger {
		t.Errorf("first message category = %q, want %q", messages[0].Category, CategoryDanger)
	}
	if messages[1].Category != CategorySuccess {
		t.Errorf("second message category = %q, want %q", messages[1].Category, CategorySuccess)
	}
}

func TestAddPreservesCarriedMessages(t *testing.T) {
	// Queue a message on one response, carry it unshown into the next
	// request, and flash again there.
	first := httptest.NewRecorder()
	Add(first, httptest.NewRequest(http.MethodPost, "/login", nil), CategoryInfo, "You have been logged out.")

	req := carryCookie(t, first)
	rec := httptest.NewRecorder()
	Add(rec, req, CategorySuccess, "Welcome back!")

	next := carryCookie(t, rec)
	messages := Pop(httptest.NewRecorder(), next)
	if len(messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(messages))
	}
	if messages[0].Text != "You have been logged out." {
		t.Errorf("first message = %q, want the carried one", messages[0].Text)
	}
}

func TestPopClearsCookie(t *testing.T) {
	first := httptest.NewRecorder()
	Add(first, httptest.NewRequest(http.MethodGet, "/", nil), CategoryInfo, "hello")

	req := carryCookie(t, first)
	rec := httptest.NewRecorder()
	if got := Pop(rec, req); len(got) != 1 {
		t.Fatalf("got %d messages, want 1", len(got))
	}

	var cleared bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == cookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("flash cookie was not cleared after Pop")
	}
}
