// Package players serves the player report screens: form, generation,
// listing, editing and deletion. Every operation is scoped to the signed-in
// user's club.
package players

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
	"github.com/analysishub/analysishub/internal/templates/components/playerviews"
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

// HandleNewForm shows the empty player form for the chosen report type.
func (h *Handler) HandleNewForm(w http.ResponseWriter, r *http.Request) {
	choice := r.URL.Query().Get("report_type_choice")
	if choice != home.ChoiceDetailedPlayer && choice != home.ChoiceSummaryPlayer {
		flash.Add(w, r, flash.CategoryDanger, "Invalid player report type selected.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	templates.RenderPage(w, r, "New Player Report",
		playerviews.Form("/generate_player_report", choice, nil, false))
}

// HandleGenerate validates the submission, renders the PDF, stores it, and
// only then persists the player row.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	user := authz.UserFromContext(r.Context())

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	choice := r.FormValue("report_type_choice")
	if choice != home.ChoiceSummaryPlayer {
		choice = home.ChoiceDetailedPlayer
	}

	params, errs := parseForm(r)
	if len(errs) > 0 {
		templates.RenderPage(w, r, "New Player Report",
			playerviews.Form("/generate_player_report", choice, forms.FromURLValues(r.Form), false),
			dangerMessages(errs)...)
		return
	}

	// The printed team is always the club the analyst belongs to.
	params.PlayerTeam = sql.NullString{String: user.ClubName, Valid: true}
	params.ReportFilename = reports.PlayerReportFilename(params.PlayerName, time.Now())
	params.ClubID = user.ClubID

	logoPath := uploads.LogoFromRequest(r, h.cfg.Storage.UploadsDir, user.ID)

	record := playerFromParams(params, params.ReportFilename, user.ClubID)
	pdf, err := renderPlayerPDF(record, choice, logoPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to render player report")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if _, err := reports.Store(h.cfg.Storage.ReportsDir, params.ReportFilename, pdf); err != nil {
		logger.Error().Err(err).Msg("Failed to store player report")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if _, err := h.queries.CreatePlayer(r.Context(), params); err != nil {
		logger.Error().Err(err).Msg("Failed to save player")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := uploads.Remove(logoPath); err != nil {
		logger.Warn().Err(err).Str("path", logoPath).Msg("Failed to remove logo after use")
	}

	flash.Add(w, r, flash.CategorySuccess, "Player report generated and saved successfully!")
	http.Redirect(w, r, "/players", http.StatusSeeOther)
}

// HandleList shows the club's players ordered by name.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := authz.UserFromContext(r.Context())

	players, err := h.queries.ListPlayersForClub(r.Context(), user.ClubID)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to list players")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	templates.RenderPage(w, r, "Player Reports", playerviews.List(players))
}

// HandleEditForm shows the form pre-filled from the stored player.
func (h *Handler) HandleEditForm(w http.ResponseWriter, r *http.Request) {
	player, ok := h.loadPlayer(w, r)
	if !ok {
		return
	}

	choice := r.URL.Query().Get("report_type_choice")
	if choice != home.ChoiceSummaryPlayer {
		choice = home.ChoiceDetailedPlayer
	}

	templates.RenderPage(w, r, "Edit Player Report",
		playerviews.Form(fmt.Sprintf("/edit_player/%d", player.ID), choice,
			playerviews.ValuesFromPlayer(player), true))
}

// HandleUpdate applies an edit and regenerates the PDF under the original
// filename, so existing download links keep working.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	user := authz.UserFromContext(r.Context())

	player, ok := h.loadPlayer(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	choice := r.FormValue("report_type_choice")
	if choice != home.ChoiceSummaryPlayer {
		choice = home.ChoiceDetailedPlayer
	}

	params, errs := parseForm(r)
	if len(errs) > 0 {
		templates.RenderPage(w, r, "Edit Player Report",
			playerviews.Form(fmt.Sprintf("/edit_player/%d", player.ID), choice,
				forms.FromURLValues(r.Form), true),
			dangerMessages(errs)...)
		return
	}

	params.PlayerTeam = player.PlayerTeam

	logoPath := uploads.LogoFromRequest(r, h.cfg.Storage.UploadsDir, user.ID)

	record := playerFromParams(params, player.ReportFilename, user.ClubID)
	pdf, err := renderPlayerPDF(record, choice, logoPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to render player report")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if _, err := reports.Store(h.cfg.Storage.ReportsDir, player.ReportFilename, pdf); err != nil {
		logger.Error().Err(err).Msg("Failed to store player report")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := h.queries.UpdatePlayer(r.Context(), updateParams(params, player.ID, user.ClubID)); err != nil {
		logger.Error().Err(err).Msg("Failed to update player")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := uploads.Remove(logoPath); err != nil {
		logger.Warn().Err(err).Str("path", logoPath).Msg("Failed to remove logo after use")
	}

	flash.Add(w, r, flash.CategorySuccess, "Player report updated successfully!")
	http.Redirect(w, r, "/players", http.StatusSeeOther)
}

// HandleDelete removes the player and their stored report. A file that
// cannot be deleted is reported but never blocks removing the row.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	user := authz.UserFromContext(r.Context())

	player, ok := h.loadPlayer(w, r)
	if !ok {
		return
	}

	if err := reports.Delete(h.cfg.Storage.ReportsDir, player.ReportFilename); err != nil {
		logger.Warn().Err(err).Str("filename", player.ReportFilename).Msg("Failed to delete report file")
		flash.Add(w, r, flash.CategoryDanger, fmt.Sprintf("Error deleting PDF report file: %v", err))
	}

	if err := h.queries.DeletePlayer(r.Context(), dbgen.DeletePlayerParams{ID: player.ID, ClubID: user.ClubID}); err != nil {
		logger.Error().Err(err).Msg("Failed to delete player")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	flash.Add(w, r, flash.CategorySuccess,
		fmt.Sprintf("Player %q and their report have been deleted.", player.PlayerName))
	http.Redirect(w, r, "/players", http.StatusSeeOther)
}

// loadPlayer resolves the id path segment to a player in the user's club,
// writing a 404 when either the id is malformed or the player is not theirs.
func (h *Handler) loadPlayer(w http.ResponseWriter, r *http.Request) (dbgen.Player, bool) {
	user := authz.UserFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return dbgen.Player{}, false
	}

	player, err := h.queries.GetPlayerForClub(r.Context(), dbgen.GetPlayerForClubParams{ID: id, ClubID: user.ClubID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
		} else {
			log.Ctx(r.Context()).Error().Err(err).Msg("Failed to load player")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return dbgen.Player{}, false
	}

	return player, true
}

func renderPlayerPDF(p dbgen.Player, choice, logoPath string) ([]byte, error) {
	if choice == home.ChoiceSummaryPlayer {
		return reports.SummaryPlayerReport(p, logoPath)
	}
	return reports.DetailedPlayerReport(p, logoPath)
}

func dangerMessages(errs []string) []flash.Message {
	messages := make([]flash.Message, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, flash.Message{Category: flash.CategoryDanger, Text: e})
	}
	return messages
}
