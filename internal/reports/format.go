package reports

import (
	"database/sql"
	"strconv"
	"time"
)

// FormatDateDMY converts an ISO YYYY-MM-DD date string to DD/MM/YYYY for
// display. Absent or unparsable values pass through unchanged.
func FormatDateDMY(value string) string {
	if value == "" {
		return ""
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return value
	}
	return parsed.Format("02/01/2006")
}

// Nullable values render as empty strings, never as a null marker.

func nullText(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func nullInt(v sql.NullInt64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatInt(v.Int64, 10)
}

func nullFloat(v sql.NullFloat64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}

// scoreOrNA is the one exception to empty-string rendering: the match score
// line shows N/A for an unrecorded side.
func scoreOrNA(v sql.NullInt64) string {
	if !v.Valid {
		return "N/A"
	}
	return strconv.FormatInt(v.Int64, 10)
}
