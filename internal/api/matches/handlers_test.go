package matches

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

func validMatchForm() map[string]string {
	return map[string]string{
		"report_type_choice": "default_match_report",
		"match_date":         "2025-04-26",
		"home_team":          "Real Madrid",
		"away_team":          "Barcelona",
		"final_score_home":   "2",
		"final_score_away":   "3",
	}
}

func TestGenerateCreatesMatchAndFile(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.handler.HandleGenerate(rec, env.multipartRequest(t, "/generate_match_report", validMatchForm()))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303, body: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/matches" {
		t.Errorf("redirect = %q, want /matches", loc)
	}

	matches, err := env.queries.ListMatchesForClub(context.Background(), env.user.ClubID)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("match count = %d, want 1", len(matches))
	}
	m := matches[0]
	if !strings.HasPrefix(m.ReportFilename, "Match_Report_Real_Madrid_vs_Barcelona_") {
		t.Errorf("filename = %q", m.ReportFilename)
	}
	if !m.FinalScoreHome.Valid || m.FinalScoreHome.Int64 != 2 {
		t.Errorf("home score = %+v", m.FinalScoreHome)
	}

	data, err := os.ReadFile(filepath.Join(env.cfg.Storage.ReportsDir, m.ReportFilename))
	if err != nil {
		t.Fatalf("report file missing: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("stored file is not a PDF")
	}
}

func TestGenerateRequiresCoreFields(t *testing.T) {
	env := newTestEnv(t)

	form := validMatchForm()
	form["match_date"] = ""
	form["home_team"] = ""

	rec := httptest.NewRecorder()
	env.handler.HandleGenerate(rec, env.multipartRequest(t, "/generate_match_report", form))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want the form again", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Match Date is required.") {
		t.Error("expected match-date message")
	}
	if !strings.Contains(body, "Home Team Name is required.") {
		t.Error("expected home-team message")
	}

	matches, _ := env.queries.ListMatchesForClub(context.Background(), env.user.ClubID)
	if len(matches) != 0 {
		t.Fatal("errors must block the save")
	}
}

func TestGenerateRejectsNegativeScore(t *testing.T) {
	env := newTestEnv(t)

	form := validMatchForm()
	form["final_score_away"] = "-1"

	rec := httptest.NewRecorder()
	env.handler.HandleGenerate(rec, env.multipartRequest(t, "/generate_match_report", form))

	if !strings.Contains(rec.Body.String(), "Final Score Away must be a non-negative number.") {
		t.Error("expected negative-score message")
	}
	matches, _ := env.queries.ListMatchesForClub(context.Background(), env.user.ClubID)
	if len(matches) != 0 {
		t.Fatal("errors must block the save")
	}
}

func TestUpdateKeepsFilename(t *testing.T) {
	env := newTestEnv(t)

	env.handler.HandleGenerate(httptest.NewRecorder(),
		env.multipartRequest(t, "/generate_match_report", validMatchForm()))
	matches, _ := env.queries.ListMatchesForClub(context.Background(), env.user.ClubID)
	if len(matches) != 1 {
		t.Fatal("expected one match")
	}
	created := matches[0]

	form := validMatchForm()
	form["venue"] = "Estadio de La Cartuja"
	form["home_team"] = "Madrid"
	req := env.multipartRequest(t, "/edit_match/"+strconv.FormatInt(created.ID, 10), form)
	req.SetPathValue("id", strconv.FormatInt(created.ID, 10))

	rec := httptest.NewRecorder()
	env.handler.HandleUpdate(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("update status = %d, body: %s", rec.Code, rec.Body.String())
	}

	updated, err := env.queries.GetMatchForClub(context.Background(),
		dbgen.GetMatchForClubParams{ID: created.ID, ClubID: env.user.ClubID})
	if err != nil {
		t.Fatalf("reload match: %v", err)
	}
	if !updated.Venue.Valid || updated.Venue.String != "Estadio de La Cartuja" {
		t.Errorf("venue = %+v", updated.Venue)
	}
	// The filename keeps the original team names even after an edit.
	if updated.ReportFilename != created.ReportFilename {
		t.Errorf("filename changed on edit: %q -> %q", created.ReportFilename, updated.ReportFilename)
	}
}

func TestDeleteRemovesRowAndFile(t *testing.T) {
	env := newTestEnv(t)

	env.handler.HandleGenerate(httptest.NewRecorder(),
		env.multipartRequest(t, "/generate_match_report", validMatchForm()))
	matches, _ := env.queries.ListMatchesForClub(context.Background(), env.user.ClubID)
	created := matches[0]

	req := httptest.NewRequest(http.MethodPost, "/delete_match/"+strconv.FormatInt(created.ID, 10), nil)
	req = req.WithContext(authz.ContextWithUser(req.Context(), env.user))
	req.SetPathValue("id", strconv.FormatInt(created.ID, 10))

	rec := httptest.NewRecorder()
	env.handler.HandleDelete(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("delete status = %d", rec.Code)
	}

	remaining, _ := env.queries.ListMatchesForClub(context.Background(), env.user.ClubID)
	if len(remaining) != 0 {
		t.Error("row still present after delete")
	}
	if _, err := os.Stat(filepath.Join(env.cfg.Storage.ReportsDir, created.ReportFilename)); !os.IsNotExist(err) {
		t.Error("report file still present after delete")
	}
}

func TestListNewestFirst(t *testing.T) {
	env := newTestEnv(t)

	older := validMatchForm()
	older["match_date"] = "2025-01-05"
	newer := validMatchForm()
	newer["match_date"] = "2025-06-10"
	newer["home_team"] = "Atletico"

	env.handler.HandleGenerate(httptest.NewRecorder(),
		env.multipartRequest(t, "/generate_match_report", older))
	env.handler.HandleGenerate(httptest.NewRecorder(),
		env.multipartRequest(t, "/generate_match_report", newer))

	matches, err := env.queries.ListMatchesForClub(context.Background(), env.user.ClubID)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("match count = %d, want 2", len(matches))
	}
	if matches[0].MatchDate != "2025-06-10" {
		t.Errorf("first match date = %q, want the newest", matches[0].MatchDate)
	}
}
