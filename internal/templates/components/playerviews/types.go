package playerviews

import (
	"database/sql"
	"strconv"

	dbgen "github.com/analysishub/analysishub/internal/db/generated"
	"github.com/analysishub/analysishub/internal/templates/components/forms"
)

var profileFields = []forms.Field{
	{Name: "player_name", Label: "Player Name *", Kind: forms.Text},
	{Name: "jersey_number", Label: "Jersey Number", Kind: forms.Number},
	{Name: "coach_name", Label: "Coach's Name", Kind: forms.Text},
	{Name: "position", Label: "Position", Kind: forms.Text},
	{Name: "primary_positions", Label: "Other Positions", Kind: forms.Text},
	{Name: "sub_team", Label: "Sub Team", Kind: forms.Text},
	{Name: "dob", Label: "Date of Birth", Kind: forms.Date},
	{Name: "preferred_foot", Label: "Preferred Foot", Kind: forms.Text},
	{Name: "height", Label: "Height (cm)", Kind: forms.Decimal},
	{Name: "weight", Label: "Weight (kg)", Kind: forms.Decimal},
	{Name: "report_period_start", Label: "Reporting Period Start", Kind: forms.Date},
	{Name: "report_period_end", Label: "Reporting Period End", Kind: forms.Date},
}

var metricsFields = []forms.Field{
	{Name: "matches_covered", Label: "Matches Covered", Kind: forms.Textarea},
	{Name: "matches_played", Label: "Matches Played", Kind: forms.Number},
	{Name: "total_minutes_played", Label: "Total Minutes Played", Kind: forms.Number},
	{Name: "goals", Label: "Goals", Kind: forms.Number},
	{Name: "assists", Label: "Assists", Kind: forms.Number},
}

var assessmentFields = []forms.Field{
	{Name: "technical_tactical_notes", Label: "Technical / Tactical", Kind: forms.Textarea},
	{Name: "physical_notes", Label: "Physical Attributes", Kind: forms.Textarea},
	{Name: "psychological_notes", Label: "Psychological", Kind: forms.Textarea},
	{Name: "social_notes", Label: "Social", Kind: forms.Textarea},
}

var developmentFields = []forms.Field{
	{Name: "overall_performance_summary", Label: "Performance Summary", Kind: forms.Textarea},
	{Name: "key_strengths_exhibited", Label: "Key Strengths", Kind: forms.Textarea},
	{Name: "primary_areas_development", Label: "Areas for Improvement", Kind: forms.Textarea},
	{Name: "recommended_action_plan", Label: "Recommended Plan", Kind: forms.Textarea},
}

// ValuesFromPlayer maps a stored player onto the form field names for the
// edit view.
func ValuesFromPlayer(p dbgen.Player) forms.Values {
	v := forms.Values{
		"player_name":                 p.PlayerName,
		"coach_name":                  nullString(p.CoachName),
		"sub_team":                    nullString(p.SubTeam),
		"primary_positions":           nullString(p.PrimaryPositions),
		"report_period_start":         nullString(p.ReportPeriodStart),
		"report_period_end":           nullString(p.ReportPeriodEnd),
		"matches_covered":             nullString(p.MatchesCovered),
		"technical_tactical_notes":    nullString(p.TechnicalTacticalNotes),
		"physical_notes":              nullString(p.PhysicalNotes),
		"psychological_notes":         nullString(p.PsychologicalNotes),
		"social_notes":                nullString(p.SocialNotes),
		"overall_performance_summary": nullString(p.OverallPerformanceSummary),
		"key_strengths_exhibited":     nullString(p.KeyStrengthsExhibited),
		"primary_areas_development":   nullString(p.PrimaryAreasDevelopment),
		"recommended_action_plan":     nullString(p.RecommendedActionPlan),
		"position":                    nullString(p.Position),
		"dob":                         nullString(p.Dob),
		"preferred_foot":              nullString(p.PreferredFoot),
	}
	if p.JerseyNumber.Valid {
		v["jersey_number"] = strconv.FormatInt(p.JerseyNumber.Int64, 10)
	}
	if p.MatchesPlayed.Valid {
		v["matches_played"] = strconv.FormatInt(p.MatchesPlayed.Int64, 10)
	}
	if p.TotalMinutesPlayed.Valid {
		v["total_minutes_played"] = strconv.FormatInt(p.TotalMinutesPlayed.Int64, 10)
	}
	if p.Goals.Valid {
		v["goals"] = strconv.FormatInt(p.Goals.Int64, 10)
	}
	if p.Assists.Valid {
		v["assists"] = strconv.FormatInt(p.Assists.Int64, 10)
	}
	if p.Height.Valid {
		v["height"] = strconv.FormatFloat(p.Height.Float64, 'f', -1, 64)
	}
	if p.Weight.Valid {
		v["weight"] = strconv.FormatFloat(p.Weight.Float64, 'f', -1, 64)
	}
	return v
}

func nullString(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}
