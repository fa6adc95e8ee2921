package players

import (
	"net/http"

	"github.com/analysishub/analysishub/internal/api/apiutil"
	dbgen "github.com/analysishub/analysishub/internal/db/generated"
)

// parseForm validates a submitted player form and maps it onto the insert
// parameters. PlayerTeam, ReportFilename and ClubID are left for the caller.
// Any returned error message blocks the save.
func parseForm(r *http.Request) (dbgen.CreatePlayerParams, []string) {
	var errs []string

	params := dbgen.CreatePlayerParams{
		PlayerName:                apiutil.RequireText(r.FormValue("player_name"), "player_name", &errs),
		CoachName:                 apiutil.OptionalText(r.FormValue("coach_name")),
		SubTeam:                   apiutil.OptionalText(r.FormValue("sub_team")),
		PrimaryPositions:          apiutil.OptionalText(r.FormValue("primary_positions")),
		ReportPeriodStart:         apiutil.OptionalText(r.FormValue("report_period_start")),
		ReportPeriodEnd:           apiutil.OptionalText(r.FormValue("report_period_end")),
		MatchesCovered:            apiutil.OptionalText(r.FormValue("matches_covered")),
		TechnicalTacticalNotes:    apiutil.OptionalText(r.FormValue("technical_tactical_notes")),
		PhysicalNotes:             apiutil.OptionalText(r.FormValue("physical_notes")),
		PsychologicalNotes:        apiutil.OptionalText(r.FormValue("psychological_notes")),
		SocialNotes:               apiutil.OptionalText(r.FormValue("social_notes")),
		OverallPerformanceSummary: apiutil.OptionalText(r.FormValue("overall_performance_summary")),
		KeyStrengthsExhibited:     apiutil.OptionalText(r.FormValue("key_strengths_exhibited")),
		PrimaryAreasDevelopment:   apiutil.OptionalText(r.FormValue("primary_areas_development")),
		RecommendedActionPlan:     apiutil.OptionalText(r.FormValue("recommended_action_plan")),
		Position:                  apiutil.OptionalText(r.FormValue("position")),
		Dob:                       apiutil.OptionalText(r.FormValue("dob")),
		PreferredFoot:             apiutil.OptionalText(r.FormValue("preferred_foot")),
	}

	params.JerseyNumber = apiutil.OptionalNonNegativeInt(r.FormValue("jersey_number"), "jersey_number", &errs)
	params.MatchesPlayed = apiutil.OptionalNonNegativeInt(r.FormValue("matches_played"), "matches_played", &errs)
	params.TotalMinutesPlayed = apiutil.OptionalNonNegativeInt(r.FormValue("total_minutes_played"), "total_minutes_played", &errs)
	params.Goals = apiutil.OptionalNonNegativeInt(r.FormValue("goals"), "goals", &errs)
	params.Assists = apiutil.OptionalNonNegativeInt(r.FormValue("assists"), "assists", &errs)
	params.Height = apiutil.OptionalNonNegativeFloat(r.FormValue("height"), "height", &errs)
	params.Weight = apiutil.OptionalNonNegativeFloat(r.FormValue("weight"), "weight", &errs)

	return params, errs
}

func updateParams(p dbgen.CreatePlayerParams, id, clubID int64) dbgen.UpdatePlayerParams {
	return dbgen.UpdatePlayerParams{
		PlayerName:                p.PlayerName,
		CoachName:                 p.CoachName,
		SubTeam:                   p.SubTeam,
		PrimaryPositions:          p.PrimaryPositions,
		ReportPeriodStart:         p.ReportPeriodStart,
		ReportPeriodEnd:           p.ReportPeriodEnd,
		MatchesCovered:            p.MatchesCovered,
		MatchesPlayed:             p.MatchesPlayed,
		TotalMinutesPlayed:        p.TotalMinutesPlayed,
		Goals:                     p.Goals,
		Assists:                   p.Assists,
		TechnicalTacticalNotes:    p.TechnicalTacticalNotes,
		PhysicalNotes:             p.PhysicalNotes,
		PsychologicalNotes:        p.PsychologicalNotes,
		SocialNotes:               p.SocialNotes,
		OverallPerformanceSummary: p.OverallPerformanceSummary,
		KeyStrengthsExhibited:     p.KeyStrengthsExhibited,
		PrimaryAreasDevelopment:   p.PrimaryAreasDevelopment,
		RecommendedActionPlan:     p.RecommendedActionPlan,
		JerseyNumber:              p.JerseyNumber,
		Position:                  p.Position,
		Dob:                       p.Dob,
		PreferredFoot:             p.PreferredFoot,
		Height:                    p.Height,
		Weight:                    p.Weight,
		ID:                        id,
		ClubID:                    clubID,
	}
}

// playerFromParams builds the record handed to the PDF renderer before it is
// persisted, so a storage failure never leaves a row without a file.
func playerFromParams(p dbgen.CreatePlayerParams, filename string, clubID int64) dbgen.Player {
	return dbgen.Player{
		PlayerName:                p.PlayerName,
		CoachName:                 p.CoachName,
		SubTeam:                   p.SubTeam,
		PlayerTeam:                p.PlayerTeam,
		PrimaryPositions:          p.PrimaryPositions,
		ReportPeriodStart:         p.ReportPeriodStart,
		ReportPeriodEnd:           p.ReportPeriodEnd,
		MatchesCovered:            p.MatchesCovered,
		MatchesPlayed:             p.MatchesPlayed,
		TotalMinutesPlayed:        p.TotalMinutesPlayed,
		Goals:                     p.Goals,
		Assists:                   p.Assists,
		TechnicalTacticalNotes:    p.TechnicalTacticalNotes,
		PhysicalNotes:             p.PhysicalNotes,
		PsychologicalNotes:        p.PsychologicalNotes,
		SocialNotes:               p.SocialNotes,
		OverallPerformanceSummary: p.OverallPerformanceSummary,
		KeyStrengthsExhibited:     p.KeyStrengthsExhibited,
		PrimaryAreasDevelopment:   p.PrimaryAreasDevelopment,
		RecommendedActionPlan:     p.RecommendedActionPlan,
		JerseyNumber:              p.JerseyNumber,
		Position:                  p.Position,
		Dob:                       p.Dob,
		PreferredFoot:             p.PreferredFoot,
		Height:                    p.Height,
		Weight:                    p.Weight,
		ReportFilename:            filename,
		ClubID:                    clubID,
	}
}
