package reports

import (
	"fmt"
	"strings"
	"time"
)

// PlayerReportFilename builds the stored filename for a player report. The
// timestamp keeps repeated reports for the same player distinct.
func PlayerReportFilename(playerName string, now time.Time) string {
	if playerName == "" {
		playerName = "Unnamed_Player"
	}
	return fmt.Sprintf("Player_Report_%s_%d.pdf", filenameToken(playerName), now.Unix())
}

// MatchReportFilename builds the stored filename for a match report.
func MatchReportFilename(homeTeam, awayTeam string, now time.Time) string {
	return fmt.Sprintf("Match_Report_%s_vs_%s_%d.pdf", filenameToken(homeTeam), filenameToken(awayTeam), now.Unix())
}

// filenameToken reduces free text to a safe filename fragment: spaces become
// underscores and anything outside [A-Za-z0-9._-] is dropped.
func filenameToken(s string) string {
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
	return b.String()
}
