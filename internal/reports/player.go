package reports

import (
	dbgen "github.com/analysishub/analysishub/internal/db/generated"
)

// DetailedPlayerReport renders the full four-section player report: profile
// vitals, objective metrics, the 4-corner assessment, and the development
// plan.
func DetailedPlayerReport(p dbgen.Player, logoPath string) ([]byte, error) {
	d := newDoc(logoPath)

	d.title("Player Performance Report")

	d.vitalsTable("Player Profile", playerProfileRows(p))

	d.sectionTable("Performance Overview (Objective Metrics)", []row{
		{label: "Matches Played:", value: nullInt(p.MatchesPlayed)},
		{label: "Total Minutes:", value: nullInt(p.TotalMinutesPlayed)},
		{label: "Goals:", value: nullInt(p.Goals)},
		{label: "Assists:", value: nullInt(p.Assists)},
	})

	d.sectionTable("Player Assessment (4-Corner Model)", []row{
		{label: "Technical / Tactical:", value: nullText(p.TechnicalTacticalNotes), rich: true},
		{label: "Physical Attributes:", value: nullText(p.PhysicalNotes), rich: true},
		{label: "Psychological:", value: nullText(p.PsychologicalNotes), rich: true},
		{label: "Social:", value: nullText(p.SocialNotes), rich: true},
	})

	d.sectionTable("Development & Action Plan", []row{
		{label: "Performance Summary:", value: nullText(p.OverallPerformanceSummary), rich: true},
		{label: "Key Strengths:", value: nullText(p.KeyStrengthsExhibited), rich: true},
		{label: "Areas for Improvement:", value: nullText(p.PrimaryAreasDevelopment), rich: true},
		{label: "Recommended Plan:", value: nullText(p.RecommendedActionPlan), rich: true},
	})

	return d.bytes()
}

// SummaryPlayerReport renders the condensed variant: profile vitals,
// objective metrics, and a single summary grid.
func SummaryPlayerReport(p dbgen.Player, logoPath string) ([]byte, error) {
	d := newDoc(logoPath)

	d.title("Player Summary Report")

	d.vitalsTable("Player Profile", playerProfileRows(p))

	d.sectionTable("Performance Overview (Objective Metrics)", []row{
		{label: "Matches Covered:", value: nullText(p.MatchesCovered), rich: true},
		{label: "Matches Played:", value: nullInt(p.MatchesPlayed)},
		{label: "Total Minutes:", value: nullInt(p.TotalMinutesPlayed)},
		{label: "Goals:", value: nullInt(p.Goals)},
		{label: "Assists:", value: nullInt(p.Assists)},
	})

	d.sectionTable("Summary & Development", []row{
		{label: "Performance Summary:", value: nullText(p.OverallPerformanceSummary), rich: true},
		{label: "Key Strengths:", value: nullText(p.KeyStrengthsExhibited), rich: true},
		{label: "Areas for Improvement:", value: nullText(p.PrimaryAreasDevelopment), rich: true},
		{label: "Recommended Plan:", value: nullText(p.RecommendedActionPlan), rich: true},
	})

	return d.bytes()
}

func playerProfileRows(p dbgen.Player) []vitalsRow {
	reportingPeriod := FormatDateDMY(nullText(p.ReportPeriodStart)) + " - " + FormatDateDMY(nullText(p.ReportPeriodEnd))
	return []vitalsRow{
		{"Player Name:", p.PlayerName, "Jersey Number:", nullInt(p.JerseyNumber)},
		{"Coach's Name:", nullText(p.CoachName), "Current Team:", nullText(p.PlayerTeam)},
		{"Position:", nullText(p.Position), "Other Positions:", nullText(p.PrimaryPositions)},
		{"Sub Team:", nullText(p.SubTeam), "Date of Birth:", FormatDateDMY(nullText(p.Dob))},
		{"Height (cm):", nullFloat(p.Height), "Weight (kg):", nullFloat(p.Weight)},
		{"Preferred Foot:", nullText(p.PreferredFoot), "Reporting Period:", reportingPeriod},
	}
}
