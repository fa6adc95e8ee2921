// Package home renders the report type picker shown after sign-in.
package home

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ReportTypeChoices are the accepted values of the report_type_choice
// parameter for player reports.
const (
	ChoiceDetailedPlayer = "default_detailed_player_report"
	ChoiceSummaryPlayer  = "default_summary_player_report"
	ChoiceMatch          = "default_match_report"
)

// SelectReportType renders the landing page with one card per report kind.
func SelectReportType() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<h1>Create a Report</h1>`+
				`<div class="choice-grid">`+
				`<div class="choice-card"><h2>Detailed Player Report</h2>`+
				`<p>Full player assessment: profile, objective metrics, the 4-corner model and a development plan.</p>`+
				`<a class="btn" href="/create_player_report_form?report_type_choice=`+ChoiceDetailedPlayer+`">Start</a></div>`+
				`<div class="choice-card"><h2>Summary Player Report</h2>`+
				`<p>Condensed player report covering the headline metrics and summary notes.</p>`+
				`<a class="btn" href="/create_player_report_form?report_type_choice=`+ChoiceSummaryPlayer+`">Start</a></div>`+
				`<div class="choice-card"><h2>Match Report</h2>`+
				`<p>Match analysis: information, team setup, tactical phases and conclusive insights.</p>`+
				`<a class="btn" href="/create_match_report_form?report_type_choice=`+ChoiceMatch+`">Start</a></div>`+
				`</div>`)
		return err
	})
}
