// Package playerviews renders the player report form and listing.
package playerviews

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	dbgen "github.com/analysishub/analysishub/internal/db/generated"
	"github.com/analysishub/analysishub/internal/templates/components/forms"
)

// Form renders the player report input form. action is the submit target;
// values carries either an existing player or a rejected submission.
func Form(action, reportTypeChoice string, values forms.Values, editing bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		heading := "New Player Report"
		submit := "Generate Report"
		if editing {
			heading = "Edit Player Report"
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
			{"Player Profile", profileFields},
			{"Performance Overview", metricsFields},
			{"Player Assessment (4-Corner Model)", assessmentFields},
			{"Development & Action Plan", developmentFields},
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
			`<p><button class="btn" type="submit">%s</button> <a class="btn btn-secondary" href="/players">Cancel</a></p></form>`,
			templ.EscapeString(submit))
		return err
	})
}

// List renders the club's players with edit, delete and download actions.
func List(players []dbgen.Player) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Player Reports</h1>`); err != nil {
			return err
		}
		if len(players) == 0 {
			_, err := io.WriteString(w, `<p>No player reports yet. <a href="/">Create one</a>.</p>`)
			return err
		}

		if _, err := io.WriteString(w,
			`<table class="listing"><thead><tr><th>Player</th><th>Position</th><th>Team</th><th>Created</th><th>Actions</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, p := range players {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td>`+
					`<td class="actions">`+
					`<a class="btn" href="/download_report/%s">Download</a> `+
					`<a class="btn btn-secondary" href="/edit_player/%d">Edit</a> `+
					`<form method="post" action="/delete_player/%d" onsubmit="return confirm('Delete this player and their report?')">`+
					`<button class="btn btn-danger" type="submit">Delete</button></form>`+
					`</td></tr>`,
				templ.EscapeString(p.PlayerName),
				templ.EscapeString(nullString(p.Position)),
				templ.EscapeString(nullString(p.PlayerTeam)),
				p.CreatedAt.Format("02/01/2006"),
				templ.EscapeString(p.ReportFilename),
				p.ID, p.ID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}
