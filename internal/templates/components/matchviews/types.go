package matchviews

import (
	"database/sql"
	"strconv"

	dbgen "github.com/analysishub/analysishub/internal/db/generated"
	"github.com/analysishub/analysishub/internal/templates/components/forms"
)

var infoFields = []forms.Field{
	{Name: "competition", Label: "Competition", Kind: forms.Text},
	{Name: "season", Label: "Season", Kind: forms.Text},
	{Name: "match_date", Label: "Match Date *", Kind: forms.Date},
	{Name: "venue", Label: "Venue", Kind: forms.Text},
	{Name: "weather_pitch_conditions", Label: "Weather / Pitch Conditions", Kind: forms.Textarea},
	{Name: "home_team", Label: "Home Team Name *", Kind: forms.Text},
	{Name: "away_team", Label: "Away Team Name *", Kind: forms.Text},
	{Name: "final_score_home", Label: "Final Score (Home)", Kind: forms.Number},
	{Name: "final_score_away", Label: "Final Score (Away)", Kind: forms.Number},
}

var setupFields = []forms.Field{
	{Name: "home_formation_initial", Label: "Home Team Formation", Kind: forms.Text},
	{Name: "home_lineup_notes", Label: "Home Team Lineup Notes", Kind: forms.Textarea},
	{Name: "away_formation_initial", Label: "Away Team Formation", Kind: forms.Text},
	{Name: "away_lineup_notes", Label: "Away Team Lineup Notes", Kind: forms.Textarea},
}

var tacticsFields = []forms.Field{
	{Name: "home_attacking_phase", Label: "Home Team - Attacking Phase", Kind: forms.Textarea},
	{Name: "home_defensive_phase", Label: "Home Team - Defensive Phase", Kind: forms.Textarea},
	{Name: "home_key_transitions", Label: "Home Team - Transitional Play", Kind: forms.Textarea},
	{Name: "away_attacking_phase", Label: "Away Team - Attacking Phase", Kind: forms.Textarea},
	{Name: "away_defensive_phase", Label: "Away Team - Defensive Phase", Kind: forms.Textarea},
	{Name: "away_key_transitions", Label: "Away Team - Transitional Play", Kind: forms.Textarea},
}

var summaryFields = []forms.Field{
	{Name: "overall_match_summary", Label: "Overall Match Summary", Kind: forms.Textarea},
	{Name: "key_turning_points", Label: "Key Turning Point(s)", Kind: forms.Textarea},
	{Name: "man_of_the_match", Label: "Man of the Match", Kind: forms.Text},
	{Name: "final_analyst_notes", Label: "Final Notes", Kind: forms.Textarea},
}

// ValuesFromMatch maps a stored match onto the form field names for the edit
// view.
func ValuesFromMatch(m dbgen.Match) forms.Values {
	v := forms.Values{
		"competition":              nullString(m.Competition),
		"season":                   nullString(m.Season),
		"match_date":               m.MatchDate,
		"venue":                    nullString(m.Venue),
		"weather_pitch_conditions": nullString(m.WeatherPitchConditions),
		"home_team":                m.HomeTeam,
		"away_team":                m.AwayTeam,
		"home_formation_initial":   nullString(m.HomeFormationInitial),
		"away_formation_initial":   nullString(m.AwayFormationInitial),
		"home_lineup_notes":        nullString(m.HomeLineupNotes),
		"away_lineup_notes":        nullString(m.AwayLineupNotes),
		"home_attacking_phase":     nullString(m.HomeAttackingPhase),
		"home_defensive_phase":     nullString(m.HomeDefensivePhase),
		"home_key_transitions":     nullString(m.HomeKeyTransitions),
		"away_attacking_phase":     nullString(m.AwayAttackingPhase),
		"away_defensive_phase":     nullString(m.AwayDefensivePhase),
		"away_key_transitions":     nullString(m.AwayKeyTransitions),
		"overall_match_summary":    nullString(m.OverallMatchSummary),
		"key_turning_points":       nullString(m.KeyTurningPoints),
		"man_of_the_match":         nullString(m.ManOfTheMatch),
		"final_analyst_notes":      nullString(m.FinalAnalystNotes),
	}
	if m.FinalScoreHome.Valid {
		v["final_score_home"] = strconv.FormatInt(m.FinalScoreHome.Int64, 10)
	}
	if m.FinalScoreAway.Valid {
		v["final_score_away"] = strconv.FormatInt(m.FinalScoreAway.Int64, 10)
	}
	return v
}

func nullString(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}
