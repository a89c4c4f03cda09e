package fixture

import (
	"context"

	"github.com/preston-bernstein/nfl-data-service/internal/domain/injuries"
	"github.com/preston-bernstein/nfl-data-service/internal/domain/rankings"
	"github.com/preston-bernstein/nfl-data-service/internal/domain/ratings"
	"github.com/preston-bernstein/nfl-data-service/internal/providers"
)

// Provider returns a static data set useful for local testing and bootstrapping.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// Set exposes every fixture source as a fetcher.
func (p *Provider) Set() providers.Set {
	return providers.Set{
		Injuries:     providers.FetcherFunc[injuries.TeamInjuries](p.Injuries),
		Madden:       providers.FetcherFunc[ratings.MaddenRating](p.MaddenRatings),
		PFF:          providers.FetcherFunc[ratings.PFFRating](p.PFFRatings),
		LineRankings: providers.FetcherFunc[rankings.TeamRanking](p.LineRankings),
	}
}

// Injuries returns a deterministic injury report.
func (p *Provider) Injuries(ctx context.Context) ([]injuries.TeamInjuries, error) {
	_ = ctx
	return []injuries.TeamInjuries{
		{
			Team: "Seattle Seahawks",
			Injuries: []injuries.Injury{
				{Player: "Kenneth Walker III", Position: "RB", Injury: "Oblique", Status: "Questionable", EstimatedReturn: "Week 3"},
			},
		},
		{
			Team: "Detroit Lions",
			Injuries: []injuries.Injury{
				{Player: "Amon-Ra St. Brown", Position: "WR", Injury: "Knee", Status: "Probable", EstimatedReturn: "Week 2"},
				{Player: "Alim McNeill", Position: "DT", Injury: "ACL", Status: "Out", EstimatedReturn: "Week 10"},
			},
		},
		{Team: "Kansas City Chiefs", Injuries: []injuries.Injury{}},
	}, nil
}

// MaddenRatings returns deterministic Madden player ratings.
func (p *Provider) MaddenRatings(ctx context.Context) ([]ratings.MaddenRating, error) {
	_ = ctx
	return []ratings.MaddenRating{
		{Name: "Devon Witherspoon", Position: "CB", Team: "Seattle Seahawks", Overall: intPtr(88), Source: ratings.SourceMadden},
		{Name: "Patrick Mahomes", Position: "QB", Team: "Kansas City Chiefs", Overall: intPtr(99), Source: ratings.SourceMadden},
		{Name: "Amon-Ra St. Brown", Position: "WR", Team: "Detroit Lions", Overall: intPtr(96), Source: ratings.SourceMadden},
		{Name: "Kenneth Walker III", Position: "RB", Team: ratings.UnknownTeam, Overall: intPtr(85), Source: ratings.SourceMadden},
	}, nil
}

// PFFRatings returns deterministic Pro Football Focus rows.
func (p *Provider) PFFRatings(ctx context.Context) ([]ratings.PFFRating, error) {
	_ = ctx
	return []ratings.PFFRating{
		{Name: "Patrick Mahomes", Position: "QB", Team: "KC", OverallRank: floatPtr(24), PositionRank: floatPtr(3), ByeWeek: intPtr(10), ADP: floatPtr(30.5), ProjectedPoints: floatPtr(341.2), AuctionValue: floatPtr(14), Source: ratings.SourcePFF},
		{Name: "Amon-Ra St. Brown", Position: "WR", Team: "DET", OverallRank: floatPtr(5), PositionRank: floatPtr(3), ByeWeek: intPtr(8), ADP: floatPtr(6.1), ProjectedPoints: floatPtr(298.4), AuctionValue: floatPtr(52), Source: ratings.SourcePFF},
		{Name: "Kenneth Walker", Position: "RB", Team: "SEA", OverallRank: floatPtr(31), PositionRank: floatPtr(12), ByeWeek: intPtr(8), Source: ratings.SourcePFF},
		{Name: "Bijan Robinson", Position: "RB", Team: "ATL", OverallRank: floatPtr(1), PositionRank: floatPtr(1), ByeWeek: intPtr(5), ADP: floatPtr(1.4), ProjectedPoints: floatPtr(320.8), AuctionValue: floatPtr(61), Source: ratings.SourcePFF},
	}, nil
}

// LineRankings returns deterministic offensive line rankings.
func (p *Provider) LineRankings(ctx context.Context) ([]rankings.TeamRanking, error) {
	_ = ctx
	return []rankings.TeamRanking{
		{Rank: intPtr(1), Team: "Philadelphia Eagles", Description: "Elite in both phases.", KeyDetails: map[string]float64{
			rankings.KeyOverallGrade: 84.1, rankings.KeyPassBlockingGrade: 80.3, rankings.KeyRunBlockingGrade: 86.0, rankings.KeySacksAllowed: 24,
		}},
		{Rank: intPtr(2), Team: "Detroit Lions", Description: "Dominant interior run blocking.", KeyDetails: map[string]float64{
			rankings.KeyOverallGrade: 82.7, rankings.KeyPassBlockingGrade: 78.9, rankings.KeyRunBlockingGrade: 84.4, rankings.KeySacksAllowed: 31,
		}},
		{Rank: intPtr(15), Team: "Kansas City Chiefs", Description: "Rebuilt left side.", KeyDetails: map[string]float64{
			rankings.KeyOverallGrade: 70.2, rankings.KeyPressuresAllowed: 160,
		}},
		{Rank: intPtr(28), Team: "Seattle Seahawks", Description: "Pass protection remains a concern."},
	}, nil
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
