// Package uploads stores club logo files posted with report forms. Logos
// live only long enough to be embedded into a generated PDF; callers remove
// them afterwards and a scheduled prune sweeps up anything left behind.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Allowed reports whether the uploaded filename carries an accepted image
// extension.
func Allowed(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SaveLogo writes an uploaded logo into dir under a sanitized name prefixed
// with the owning user's id and returns the stored path. Disallowed
// extensions and empty filenames are rejected.
func SaveLogo(dir string, userID int64, fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", fmt.Errorf("uploads: no file provided")
	}
	if !Allowed(fh.Filename) {
		return "", fmt.Errorf("uploads: disallowed file type %q", filepath.Ext(fh.Filename))
	}

	name := SanitizeFilename(fmt.Sprintf("%d_%s", userID, fh.Filename))
	if name == "" {
		return "", fmt.Errorf("uploads: filename %q sanitized to nothing", fh.Filename)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("uploads: creating dir: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("uploads: opening upload: %w", err)
	}
	defer src.Close()

	path := filepath.Join(dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("uploads: creating %s: %w", path, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("uploads: writing %s: %w", path, err)
	}
	return path, nil
}

// LogoFromRequest stores a logo posted under the club_logo form field and
// returns its path. The upload is optional: absent, empty or disallowed
// files yield an empty path without failing the request.
func LogoFromRequest(r *http.Request, dir string, userID int64) string {
	if r.MultipartForm == nil {
		return ""
	}
	files := r.MultipartForm.File["club_logo"]
	if len(files) == 0 || files[0].Filename == "" || !Allowed(files[0].Filename) {
		return ""
	}
	path, err := SaveLogo(dir, userID, files[0])
	if err != nil {
		log.Ctx(r.Context()).Warn().Err(err).Msg("Failed to store club logo")
		return ""
	}
	return path
}

// Remove deletes a stored logo. Missing files are not an error.
func Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// PruneStale removes files in dir older than maxAge and returns how many
// were deleted. Used by the background janitor for logos orphaned by
// failed report submissions.
func PruneStale(dir string, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}

// SanitizeFilename strips path separators and anything outside
// [A-Za-z0-9._-] from a client-supplied filename, collapsing spaces to
// underscores. The result is always safe to join under a storage dir.
func SanitizeFilename(s string) string {
	s = filepath.Base(strings.ReplaceAll(s, "\\", "/"))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == ' ':
			b.WriteByte('_')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), ".")
}
