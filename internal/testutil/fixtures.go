package testutil

import (
	"github.com/preston-bernstein/nfl-data-service/internal/domain/injuries"
	"github.com/preston-bernstein/nfl-data-service/internal/domain/rankings"
	"github.com/preston-bernstein/nfl-data-service/internal/domain/ratings"
)

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

// FloatPtr returns a pointer to v.
func FloatPtr(v float64) *float64 {
	return &v
}

// SampleMadden returns a Madden rating tagged with the Madden source.
func SampleMadden(name, position, team string, overall int) ratings.MaddenRating {
	return ratings.MaddenRating{
		Name:     name,
		Position: position,
		Team:     team,
		Overall:  IntPtr(overall),
		Source:   ratings.SourceMadden,
	}
}

// SamplePFF returns a PFF row with an overall rank and projected points.
func SamplePFF(name, position, team string, overallRank, points float64) ratings.PFFRating {
	return ratings.PFFRating{
		Name:            name,
		Position:        position,
		Team:            team,
		OverallRank:     FloatPtr(overallRank),
		ProjectedPoints: FloatPtr(points),
		Source:          ratings.SourcePFF,
	}
}

// SampleInjuryReport returns a single-team report with the given injuries.
func SampleInjuryReport(team string, list ...injuries.Injury) injuries.TeamInjuries {
	if list == nil {
		list = []injuries.Injury{}
	}
	return injuries.TeamInjuries{Team: team, Injuries: list}
}

// SampleRanking returns an offensive line ranking with an overall grade.
func SampleRanking(rank int, team string, grade float64) rankings.TeamRanking {
	return rankings.TeamRanking{
		Rank:        IntPtr(rank),
		Team:        team,
		Description: team + " offensive line",
		KeyDetails:  map[string]float64{rankings.KeyOverallGrade: grade},
	}
}
