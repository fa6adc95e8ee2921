package matches

import (
	"net/http"

	"github.com/analysishub/analysishub/internal/api/apiutil"
	dbgen "github.com/analysishub/analysishub/internal/db/generated"
)

// parseForm validates a submitted match form and maps it onto the insert
// parameters. ReportFilename and ClubID are left for the caller. Any
// returned error message blocks the save.
func parseForm(r *http.Request) (dbgen.CreateMatchParams, []string) {
	var errs []string

	params := dbgen.CreateMatchParams{
		MatchDate:              apiutil.RequireText(r.FormValue("match_date"), "match_date", &errs),
		HomeTeam:               apiutil.RequireText(r.FormValue("home_team"), "home_team_name", &errs),
		AwayTeam:               apiutil.RequireText(r.FormValue("away_team"), "away_team_name", &errs),
		Competition:            apiutil.OptionalText(r.FormValue("competition")),
		Season:                 apiutil.OptionalText(r.FormValue("season")),
		Venue:                  apiutil.OptionalText(r.FormValue("venue")),
		WeatherPitchConditions: apiutil.OptionalText(r.FormValue("weather_pitch_conditions")),
		HomeFormationInitial:   apiutil.OptionalText(r.FormValue("home_formation_initial")),
		AwayFormationInitial:   apiutil.OptionalText(r.FormValue("away_formation_initial")),
		HomeLineupNotes:        apiutil.OptionalText(r.FormValue("home_lineup_notes")),
		AwayLineupNotes:        apiutil.OptionalText(r.FormValue("away_lineup_notes")),
		HomeAttackingPhase:     apiutil.OptionalText(r.FormValue("home_attacking_phase")),
		HomeDefensivePhase:     apiutil.OptionalText(r.FormValue("home_defensive_phase")),
		HomeKeyTransitions:     apiutil.OptionalText(r.FormValue("home_key_transitions")),
		AwayAttackingPhase:     apiutil.OptionalText(r.FormValue("away_attacking_phase")),
		AwayDefensivePhase:     apiutil.OptionalText(r.FormValue("away_defensive_phase")),
		AwayKeyTransitions:     apiutil.OptionalText(r.FormValue("away_key_transitions")),
		OverallMatchSummary:    apiutil.OptionalText(r.FormValue("overall_match_summary")),
		KeyTurningPoints:       apiutil.OptionalText(r.FormValue("key_turning_points")),
		ManOfTheMatch:          apiutil.OptionalText(r.FormValue("man_of_the_match")),
		FinalAnalystNotes:      apiutil.OptionalText(r.FormValue("final_analyst_notes")),
	}

	params.FinalScoreHome = apiutil.OptionalNonNegativeInt(r.FormValue("final_score_home"), "final_score_home", &errs)
	params.FinalScoreAway = apiutil.OptionalNonNegativeInt(r.FormValue("final_score_away"), "final_score_away", &errs)

	return params, errs
}

func updateParams(p dbgen.CreateMatchParams, id, clubID int64) dbgen.UpdateMatchParams {
	return dbgen.UpdateMatchParams{
		Competition:            p.Competition,
		Season:                 p.Season,
		MatchDate:              p.MatchDate,
		Venue:                  p.Venue,
		WeatherPitchConditions: p.WeatherPitchConditions,
		HomeTeam:               p.HomeTeam,
		AwayTeam:               p.AwayTeam,
		FinalScoreHome:         p.FinalScoreHome,
		FinalScoreAway:         p.FinalScoreAway,
		HomeFormationInitial:   p.HomeFormationInitial,
		AwayFormationInitial:   p.AwayFormationInitial,
		HomeLineupNotes:        p.HomeLineupNotes,
		AwayLineupNotes:        p.AwayLineupNotes,
		HomeAttackingPhase:     p.HomeAttackingPhase,
		HomeDefensivePhase:     p.HomeDefensivePhase,
		HomeKeyTransitions:     p.HomeKeyTransitions,
		AwayAttackingPhase:     p.AwayAttackingPhase,
		AwayDefensivePhase:     p.AwayDefensivePhase,
		AwayKeyTransitions:     p.AwayKeyTransitions,
		OverallMatchSummary:    p.OverallMatchSummary,
		KeyTurningPoints:       p.KeyTurningPoints,
		ManOfTheMatch:          p.ManOfTheMatch,
		FinalAnalystNotes:      p.FinalAnalystNotes,
		ID:                     id,
		ClubID:                 clubID,
	}
}

// matchFromParams builds the record handed to the PDF renderer before it is
// persisted.
func matchFromParams(p dbgen.CreateMatchParams, filename string, clubID int64) dbgen.Match {
	return dbgen.Match{
		Competition:            p.Competition,
		Season:                 p.Season,
		MatchDate:              p.MatchDate,
		Venue:                  p.Venue,
		WeatherPitchConditions: p.WeatherPitchConditions,
		HomeTeam:               p.HomeTeam,
		AwayTeam:               p.AwayTeam,
		FinalScoreHome:         p.FinalScoreHome,
		FinalScoreAway:         p.FinalScoreAway,
		HomeFormationInitial:   p.HomeFormationInitial,
		AwayFormationInitial:   p.AwayFormationInitial,
		HomeLineupNotes:        p.HomeLineupNotes,
		AwayLineupNotes:        p.AwayLineupNotes,
		HomeAttackingPhase:     p.HomeAttackingPhase,
		HomeDefensivePhase:     p.HomeDefensivePhase,
		HomeKeyTransitions:     p.HomeKeyTransitions,
		AwayAttackingPhase:     p.AwayAttackingPhase,
		AwayDefensivePhase:     p.AwayDefensivePhase,
		AwayKeyTransitions:     p.AwayKeyTransitions,
		OverallMatchSummary:    p.OverallMatchSummary,
		KeyTurningPoints:       p.KeyTurningPoints,
		ManOfTheMatch:          p.ManOfTheMatch,
		FinalAnalystNotes:      p.FinalAnalystNotes,
		ReportFilename:         filename,
		ClubID:                 clubID,
	}
}
