package players

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/analysishub/analysishub/internal/api/authz"
	"github.com/analysishub/analysishub/internal/api/flash"
	"github.com/analysishub/analysishub/internal/config"
	dbgen "github.com/analysishub/analysishub/internal/db/generated"
	"github.com/analysishub/analysishub/internal/testutil"
)

type testEnv struct {
	handler *Handler
	queries *dbgen.Queries
	cfg     *config.Config
	user    *authz.AuthUser
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)

	cfg := &config.Config{}
	cfg.App.Name = "analysishub-test"
	cfg.App.Environment = "development"
	cfg.App.Port = 8080
	cfg.Storage.ReportsDir = filepath.Join(t.TempDir(), "reports")
	cfg.Storage.UploadsDir = filepath.Join(t.TempDir(), "uploads")

	club, err := database.Queries.CreateClub(context.Background(), "United FC")
	if err != nil {
		t.Fatalf("create club: %v", err)
	}
	user, err := database.Queries.CreateUser(context.Background(), dbgen.CreateUserParams{
		Username:     "analyst",
		PasswordHash: "x",
		ClubID:       club.ID,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	return &testEnv{
		handler: NewHandler(cfg, database.Queries),
		queries: database.Queries,
		cfg:     cfg,
		user:    &authz.AuthUser{ID: user.ID, Username: user.Username, ClubID: club.ID, ClubName: club.Name},
	}
}

func (e *testEnv) multipartRequest(t *testing.T, path string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			t.Fatalf("write field %s: %v", name, err)
		}
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req.WithContext(authz.ContextWithUser(req.Context(), e.user))
}

func (e *testEnv) getRequest(path string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	return req.WithContext(authz.ContextWithUser(req.Context(), e.user))
}

func validPlayerForm() map[string]string {
	return map[string]string{
		"report_type_choice": "default_detailed_player_report",
		"player_name":        "Jude Bellingham",
		"jersey_number":      "5",
		"goals":              "14",
		"height":             "186.5",
	}
}

func TestGenerateCreatesPlayerAndFile(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.handler.HandleGenerate(rec, env.multipartRequest(t, "/generate_player_report", validPlayerForm()))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303, body: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/players" {
		t.Errorf("redirect = %q, want /players", loc)
	}

	players, err := env.queries.ListPlayersForClub(context.Background(), env.user.ClubID)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 1 {
		t.Fatalf("player count = %d, want 1", len(players))
	}
	p := players[0]
	if p.PlayerName != "Jude Bellingham" {
		t.Errorf("name = %q", p.PlayerName)
	}
	if !p.PlayerTeam.Valid || p.PlayerTeam.String != "United FC" {
		t.Errorf("player team = %+v, want the club name", p.PlayerTeam)
	}
	if !strings.HasPrefix(p.ReportFilename, "Player_Report_Jude_Bellingham_") {
		t.Errorf("filename = %q", p.ReportFilename)
	}

	data, err := os.ReadFile(filepath.Join(env.cfg.Storage.ReportsDir, p.ReportFilename))
	if err != nil {
		t.Fatalf("report file missing: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("stored file is not a PDF")
	}
}

func TestGenerateRejectsInvalidNumbers(t *testing.T) {
	env := newTestEnv(t)

	form := validPlayerForm()
	form["height"] = "-3"
	form["goals"] = "abc"

	rec := httptest.NewRecorder()
	env.handler.HandleGenerate(rec, env.multipartRequest(t, "/generate_player_report", form))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want the form again", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Height must be a non-negative number.") {
		t.Error("expected negative-height message")
	}
	if !strings.Contains(body, "Goals must be a valid number.") {
		t.Error("expected invalid-goals message")
	}
	// Rejected submissions repopulate what the user typed.
	if !strings.Contains(body, `value="-3"`) {
		t.Error("expected the invalid height to be redisplayed")
	}

	players, err := env.queries.ListPlayersForClub(context.Background(), env.user.ClubID)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 0 {
		t.Fatal("errors must block the save")
	}
}

func TestGenerateRequiresPlayerName(t *testing.T) {
	env := newTestEnv(t)

	form := validPlayerForm()
	form["player_name"] = ""

	rec := httptest.NewRecorder()
	env.handler.HandleGenerate(rec, env.multipartRequest(t, "/generate_player_report", form))

	if !strings.Contains(rec.Body.String(), "Player Name is required.") {
		t.Error("expected required-name message")
	}
}

func TestUpdateKeepsFilename(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.handler.HandleGenerate(rec, env.multipartRequest(t, "/generate_player_report", validPlayerForm()))
	players, _ := env.queries.ListPlayersForClub(context.Background(), env.user.ClubID)
	if len(players) != 1 {
		t.Fatalf("player count = %d, want 1", len(players))
	}
	created := players[0]

	form := validPlayerForm()
	form["player_name"] = "Renamed Player"
	req := env.multipartRequest(t, "/edit_player/"+strconv.FormatInt(created.ID, 10), form)
	req.SetPathValue("id", strconv.FormatInt(created.ID, 10))

	rec = httptest.NewRecorder()
	env.handler.HandleUpdate(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("update status = %d, body: %s", rec.Code, rec.Body.String())
	}

	updated, err := env.queries.GetPlayerForClub(context.Background(),
		dbgen.GetPlayerForClubParams{ID: created.ID, ClubID: env.user.ClubID})
	if err != nil {
		t.Fatalf("reload player: %v", err)
	}
	if updated.PlayerName != "Renamed Player" {
		t.Errorf("name = %q", updated.PlayerName)
	}
	if updated.ReportFilename != created.ReportFilename {
		t.Errorf("filename changed on edit: %q -> %q", created.ReportFilename, updated.ReportFilename)
	}
	if _, err := os.Stat(filepath.Join(env.cfg.Storage.ReportsDir, updated.ReportFilename)); err != nil {
		t.Errorf("regenerated file missing: %v", err)
	}
}

func TestDeleteRemovesRowAndFile(t *testing.T) {
	env := newTestEnv(t)

	env.handler.HandleGenerate(httptest.NewRecorder(),
		env.multipartRequest(t, "/generate_player_report", validPlayerForm()))
	players, _ := env.queries.ListPlayersForClub(context.Background(), env.user.ClubID)
	if len(players) != 1 {
		t.Fatal("expected one player")
	}
	created := players[0]

	req := env.getRequest("/delete_player/" + strconv.FormatInt(created.ID, 10))
	req.Method = http.MethodPost
	req.SetPathValue("id", strconv.FormatInt(created.ID, 10))

	rec := httptest.NewRecorder()
	env.handler.HandleDelete(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("delete status = %d", rec.Code)
	}

	remaining, _ := env.queries.ListPlayersForClub(context.Background(), env.user.ClubID)
	if len(remaining) != 0 {
		t.Error("row still present after delete")
	}
	if _, err := os.Stat(filepath.Join(env.cfg.Storage.ReportsDir, created.ReportFilename)); !os.IsNotExist(err) {
		t.Error("report file still present after delete")
	}
}

func TestDeleteFileFailureKeepsBothFlashes(t *testing.T) {
	env := newTestEnv(t)

	env.handler.HandleGenerate(httptest.NewRecorder(),
		env.multipartRequest(t, "/generate_player_report", validPlayerForm()))
	players, _ := env.queries.ListPlayersForClub(context.Background(), env.user.ClubID)
	if len(players) != 1 {
		t.Fatal("expected one player")
	}
	created := players[0]

	// Turn the stored report into a non-empty directory so removal fails.
	path := filepath.Join(env.cfg.Storage.ReportsDir, created.ReportFilename)
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove report: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(path, "inner"), 0o755); err != nil {
		t.Fatalf("block report path: %v", err)
	}

	req := env.getRequest("/delete_player/" + strconv.FormatInt(created.ID, 10))
	req.Method = http.MethodPost
	req.SetPathValue("id", strconv.FormatInt(created.ID, 10))

	rec := httptest.NewRecorder()
	env.handler.HandleDelete(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("delete status = %d", rec.Code)
	}

	next := httptest.NewRequest(http.MethodGet, "/players", nil)
	for _, cookie := range rec.Result().Cookies() {
		next.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}
	messages := flash.Pop(httptest.NewRecorder(), next)
	if len(messages) != 2 {
		t.Fatalf("got %d flash messages, want warning plus success", len(messages))
	}
	if messages[0].Category != flash.CategoryDanger || !strings.Contains(messages[0].Text, "Error deleting PDF report file") {
		t.Errorf("first message = %+v, want the file-removal warning", messages[0])
	}
	if messages[1].Category != flash.CategorySuccess {
		t.Errorf("second message = %+v, want the deletion notice", messages[1])
	}

	remaining, _ := env.queries.ListPlayersForClub(context.Background(), env.user.ClubID)
	if len(remaining) != 0 {
		t.Error("row still present after delete")
	}
}

func TestEditOtherClubsPlayerIs404(t *testing.T) {
	env := newTestEnv(t)

	env.handler.HandleGenerate(httptest.NewRecorder(),
		env.multipartRequest(t, "/generate_player_report", validPlayerForm()))
	players, _ := env.queries.ListPlayersForClub(context.Background(), env.user.ClubID)
	created := players[0]

	otherClub, err := env.queries.CreateClub(context.Background(), "Rivals FC")
	if err != nil {
		t.Fatalf("create club: %v", err)
	}
	outsider := &authz.AuthUser{ID: 99, Username: "rival", ClubID: otherClub.ID, ClubName: otherClub.Name}

	req := httptest.NewRequest(http.MethodGet, "/edit_player/"+strconv.FormatInt(created.ID, 10), nil)
	req = req.WithContext(authz.ContextWithUser(req.Context(), outsider))
	req.SetPathValue("id", strconv.FormatInt(created.ID, 10))

	rec := httptest.NewRecorder()
	env.handler.HandleEditForm(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestNewFormRejectsUnknownChoice(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.handler.HandleNewForm(rec, env.getRequest("/create_player_report_form?report_type_choice=bogus"))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want redirect", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("redirect = %q, want /", loc)
	}
}

func TestListShowsClubPlayersOnly(t *testing.T) {
	env := newTestEnv(t)

	env.handler.HandleGenerate(httptest.NewRecorder(),
		env.multipartRequest(t, "/generate_player_report", validPlayerForm()))

	rec := httptest.NewRecorder()
	env.handler.HandleList(rec, env.getRequest("/players"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Jude Bellingham") {
		t.Error("expected the player in the listing")
	}
}
