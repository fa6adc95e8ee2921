// Package matches serves the match report screens: form, generation,
// listing, editing and deletion, all scoped to the signed-in user's club.
package matches

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/analysishub/analysishub/internal/api/authz"
	"github.com/analysishub/analysishub/internal/api/flash"
	"github.com/analysishub/analysishub/internal/config"
	dbgen "github.com/analysishub/analysishub/internal/db/generated"
	"github.com/analysishub/analysishub/internal/reports"
	"github.com/analysishub/analysishub/internal/templates"
	"github.com/analysishub/analysishub/internal/templates/components/forms"
	"github.com/analysishub/analysishub/internal/templates/components/home"
	"github.com/analysishub/analysishub/internal/templates/components/matchviews"
	"github.com/analysishub/analysishub/internal/uploads"
)

const maxFormMemory = 10 << 20

type Handler struct {
	cfg     *config.Config
	queries *dbgen.Queries
}

func NewHandler(cfg *config.Config, q *dbgen.Queries) *Handler {
	return &Handler{cfg: cfg, queries: q}
}

// HandleNewForm shows the empty match form.
func (h *Handler) HandleNewForm(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("report_type_choice") != home.ChoiceMatch {
		flash.Add(w, r, flash.CategoryDanger, "Invalid match report type selected.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	templates.RenderPage(w, r, "New Match Report",
		matchviews.Form("/generate_match_report", home.ChoiceMatch, nil, false))
}

// HandleGenerate validates the submission, renders the PDF, stores it, and
// only then persists the match row.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	user := authz.UserFromContext(r.Context())

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	params, errs := parseForm(r)
	if len(errs) > 0 {
		templates.RenderPage(w, r, "New Match Report",
			matchviews.Form("/generate_match_report", home.ChoiceMatch, forms.FromURLValues(r.Form), false),
			dangerMessages(errs)...)
		return
	}

	params.ReportFilename = reports.MatchReportFilename(params.HomeTeam, params.AwayTeam, time.Now())
	params.ClubID = user.ClubID

	logoPath := uploads.LogoFromRequest(r, h.cfg.Storage.UploadsDir, user.ID)

	pdf, err := reports.MatchReport(matchFromParams(params, params.ReportFilename, user.ClubID), logoPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to render match report")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if _, err := reports.Store(h.cfg.Storage.ReportsDir, params.ReportFilename, pdf); err != nil {
		logger.Error().Err(err).Msg("Failed to store match report")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if _, err := h.queries.CreateMatch(r.Context(), params); err != nil {
		logger.Error().Err(err).Msg("Failed to save match")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := uploads.Remove(logoPath); err != nil {
		logger.Warn().Err(err).Str("path", logoPath).Msg("Failed to remove logo after use")
	}

	flash.Add(w, r, flash.CategorySuccess, "Match report generated and saved successfully!")
	http.Redirect(w, r, "/matches", http.StatusSeeOther)
}

// HandleList shows the club's matches, newest first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := authz.UserFromContext(r.Context())

	matches, err := h.queries.ListMatchesForClub(r.Context(), user.ClubID)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to list matches")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	templates.RenderPage(w, r, "Match Reports", matchviews.List(matches))
}

// HandleEditForm shows the form pre-filled from the stored match.
func (h *Handler) HandleEditForm(w http.ResponseWriter, r *http.Request) {
	match, ok := h.loadMatch(w, r)
	if !ok {
		return
	}

	templates.RenderPage(w, r, "Edit Match Report",
		matchviews.Form(fmt.Sprintf("/edit_match/%d", match.ID), home.ChoiceMatch,
			matchviews.ValuesFromMatch(match), true))
}

// HandleUpdate applies an edit and regenerates the PDF under the original
// filename.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	user := authz.UserFromContext(r.Context())

	match, ok := h.loadMatch(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	params, errs := parseForm(r)
	if len(errs) > 0 {
		templates.RenderPage(w, r, "Edit Match Report",
			matchviews.Form(fmt.Sprintf("/edit_match/%d", match.ID), home.ChoiceMatch,
				forms.FromURLValues(r.Form), true),
			dangerMessages(errs)...)
		return
	}

	logoPath := uploads.LogoFromRequest(r, h.cfg.Storage.UploadsDir, user.ID)

	pdf, err := reports.MatchReport(matchFromParams(params, match.ReportFilename, user.ClubID), logoPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to render match report")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if _, err := reports.Store(h.cfg.Storage.ReportsDir, match.ReportFilename, pdf); err != nil {
		logger.Error().Err(err).Msg("Failed to store match report")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := h.queries.UpdateMatch(r.Context(), updateParams(params, match.ID, user.ClubID)); err != nil {
		logger.Error().Err(err).Msg("Failed to update match")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := uploads.Remove(logoPath); err != nil {
		logger.Warn().Err(err).Str("path", logoPath).Msg("Failed to remove logo after use")
	}

	flash.Add(w, r, flash.CategorySuccess, "Match report updated successfully!")
	http.Redirect(w, r, "/matches", http.StatusSeeOther)
}

// HandleDelete removes the match and its stored report.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	user := authz.UserFromContext(r.Context())

	match, ok := h.loadMatch(w, r)
	if !ok {
		return
	}

	if err := reports.Delete(h.cfg.Storage.ReportsDir, match.ReportFilename); err != nil {
		logger.Warn().Err(err).Str("filename", match.ReportFilename).Msg("Failed to delete report file")
		flash.Add(w, r, flash.CategoryDanger, fmt.Sprintf("Error deleting PDF report file: %v", err))
	}

	if err := h.queries.DeleteMatch(r.Context(), dbgen.DeleteMatchParams{ID: match.ID, ClubID: user.ClubID}); err != nil {
		logger.Error().Err(err).Msg("Failed to delete match")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	flash.Add(w, r, flash.CategorySuccess,
		fmt.Sprintf("Match report for %q on %s has been deleted.",
			match.HomeTeam+" vs "+match.AwayTeam, match.MatchDate))
	http.Redirect(w, r, "/matches", http.StatusSeeOther)
}

func (h *Handler) loadMatch(w http.ResponseWriter, r *http.Request) (dbgen.Match, bool) {
	user := authz.UserFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return dbgen.Match{}, false
	}

	match, err := h.queries.GetMatchForClub(r.Context(), dbgen.GetMatchForClubParams{ID: id, ClubID: user.ClubID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
		} else {
			log.Ctx(r.Context()).Error().Err(err).Msg("Failed to load match")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return dbgen.Match{}, false
	}

	return match, true
}

func dangerMessages(errs []string) []flash.Message {
	messages := make([]flash.Message, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, flash.Message{Category: flash.CategoryDanger, Text: e})
	}
	return messages
}
