package reports

import (
	dbgen "github.com/analysishub/analysishub/internal/db/generated"
)

// MatchReport renders the four-section match report: match information,
// team setup, tactical analysis, and the conclusive summary.
func MatchReport(m dbgen.Match, logoPath string) ([]byte, error) {
	d := newDoc(logoPath)

	d.title("Match Performance Report")

	d.sectionTable("Match Information", []row{
		{label: "Competition:", value: nullText(m.Competition)},
		{label: "Season:", value: nullText(m.Season)},
		{label: "Match Date:", value: FormatDateDMY(m.MatchDate)},
		{label: "Venue:", value: nullText(m.Venue)},
		{label: "Home Team:", value: m.HomeTeam},
		{label: "Away Team:", value: m.AwayTeam},
		{label: "Final Score:", value: scoreOrNA(m.FinalScoreHome) + " - " + scoreOrNA(m.FinalScoreAway)},
	})

	d.sectionTable("Team & Player Setup", []row{
		{label: "Home Team Formation:", value: nullText(m.HomeFormationInitial), rich: true},
		{label: "Home Team Lineup Notes:", value: nullText(m.HomeLineupNotes), rich: true},
		{label: "Away Team Formation:", value: nullText(m.AwayFormationInitial), rich: true},
		{label: "Away Team Lineup Notes:", value: nullText(m.AwayLineupNotes), rich: true},
	})

	d.sectionTable("Tactical Analysis", []row{
		{label: "Home Team - Attacking Phase:", value: nullText(m.HomeAttackingPhase), rich: true},
		{label: "Home Team - Defensive Phase:", value: nullText(m.HomeDefensivePhase), rich: true},
		{label: "Home Team - Transitional Play:", value: nullText(m.HomeKeyTransitions), rich: true},
		{label: "Away Team - Attacking Phase:", value: nullText(m.AwayAttackingPhase), rich: true},
		{label: "Away Team - Defensive Phase:", value: nullText(m.AwayDefensivePhase), rich: true},
		{label: "Away Team - Transitional Play:", value: nullText(m.AwayKeyTransitions), rich: true},
	})

	d.sectionTable("Match Summary & Insights", []row{
		{label: "Overall Match Summary:", value: nullText(m.OverallMatchSummary), rich: true},
		{label: "Key Turning Point(s):", value: nullText(m.KeyTurningPoints), rich: true},
		{label: "Man of the Match:", value: nullText(m.ManOfTheMatch), rich: true},
		{label: "Final Notes:", value: nullText(m.FinalAnalystNotes), rich: true},
	})

	return d.bytes()
}
