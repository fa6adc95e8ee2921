// Package matchviews renders the match report form and listing.
package matchviews

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	dbgen "github.com/analysishub/analysishub/internal/db/generated"
	"github.com/analysishub/analysishub/internal/reports"
	"github.com/analysishub/analysishub/internal/templates/components/forms"
)

// Form renders the match report input form.
func Form(action, reportTypeChoice string, values forms.Values, editing bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		heading := "New Match Report"
		submit := "Generate Report"
		if editing {
			heading = "Edit Match Report"
			submit = "Update Report"
		}

		if _, err := fmt.Fprintf(w,
			`<h1>%s</h1><form class="report" method="post" action="%s" enctype="multipart/form-data">`+
				`<input type="hidden" name="report_type_choice" value="%s">`,
			templ.EscapeString(heading), templ.EscapeString(action), templ.EscapeString(reportTypeChoice)); err != nil {
			return err
		}

		sections := []struct {
			legend string
			fields []forms.Field
		}{
			{"Match Information", infoFields},
			{"Team & Player Setup", setupFields},
			{"Tactical Analysis", tacticsFields},
			{"Match Summary & Insights", summaryFields},
		}
		for _, s := range sections {
			if err := forms.RenderFieldset(w, s.legend, s.fields, values); err != nil {
				return err
			}
		}
		if err := forms.RenderLogoInput(w); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w,
			`<p><button class="btn" type="submit">%s</button> <a class="btn btn-secondary" href="/matches">Cancel</a></p></form>`,
			templ.EscapeString(submit))
		return err
	})
}

// List renders the club's matches, newest first, with edit, delete and
// download actions.
func List(matches []dbgen.Match) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Match Reports</h1>`); err != nil {
			return err
		}
		if len(matches) == 0 {
			_, err := io.WriteString(w, `<p>No match reports yet. <a href="/">Create one</a>.</p>`)
			return err
		}

		if _, err := io.WriteString(w,
			`<table class="listing"><thead><tr><th>Fixture</th><th>Date</th><th>Competition</th><th>Score</th><th>Actions</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, m := range matches {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s vs %s</td><td>%s</td><td>%s</td><td>%s</td>`+
					`<td class="actions">`+
					`<a class="btn" href="/download_report/%s">Download</a> `+
					`<a class="btn btn-secondary" href="/edit_match/%d">Edit</a> `+
					`<form method="post" action="/delete_match/%d" onsubmit="return confirm('Delete this match report?')">`+
					`<button class="btn btn-danger" type="submit">Delete</button></form>`+
					`</td></tr>`,
				templ.EscapeString(m.HomeTeam), templ.EscapeString(m.AwayTeam),
				templ.EscapeString(reports.FormatDateDMY(m.MatchDate)),
				templ.EscapeString(nullString(m.Competition)),
				templ.EscapeString(scoreText(m)),
				templ.EscapeString(m.ReportFilename),
				m.ID, m.ID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}

func scoreText(m dbgen.Match) string {
	if !m.FinalScoreHome.Valid && !m.FinalScoreAway.Valid {
		return ""
	}
	home, away := "N/A", "N/A"
	if m.FinalScoreHome.Valid {
		home = fmt.Sprintf("%d", m.FinalScoreHome.Int64)
	}
	if m.FinalScoreAway.Valid {
		away = fmt.Sprintf("%d", m.FinalScoreAway.Int64)
	}
	return home + " - " + away
}
