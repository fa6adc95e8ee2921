// Package reportfiles gates download access to generated report PDFs. A
// file is served only when a player or match in the requester's club owns
// that exact filename.
package reportfiles

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/analysishub/analysishub/internal/api/authz"
	"github.com/analysishub/analysishub/internal/config"
	dbgen "github.com/analysishub/analysishub/internal/db/generated"
	"github.com/analysishub/analysishub/internal/uploads"
)

type Handler struct {
	cfg     *config.Config
	queries *dbgen.Queries
}

func NewHandler(cfg *config.Config, q *dbgen.Queries) *Handler {
	return &Handler{cfg: cfg, queries: q}
}

// HandleDownload streams a report as an attachment. Requests for filenames
// not owned by the user's club, and for rows whose file has gone missing,
// both answer 404 so ownership cannot be probed.
func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	user := authz.UserFromContext(r.Context())

	name := uploads.SanitizeFilename(r.PathValue("filename"))
	if name == "" {
		http.NotFound(w, r)
		return
	}

	if !h.clubOwnsReport(r, name, user.ClubID) {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.cfg.Storage.ReportsDir, name)
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Ctx(r.Context()).Error().Err(err).Str("path", path).Msg("Failed to open report file")
		}
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeContent(w, r, name, info.ModTime(), f)
}

func (h *Handler) clubOwnsReport(r *http.Request, filename string, clubID int64) bool {
	_, err := h.queries.GetPlayerByReportFilename(r.Context(),
		dbgen.GetPlayerByReportFilenameParams{ReportFilename: filename, ClubID: clubID})
	if err == nil {
		return true
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to check player report ownership")
		return false
	}

	_, err = h.queries.GetMatchByReportFilename(r.Context(),
		dbgen.GetMatchByReportFilenameParams{ReportFilename: filename, ClubID: clubID})
	if err == nil {
		return true
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to check match report ownership")
	}
	return false
}
