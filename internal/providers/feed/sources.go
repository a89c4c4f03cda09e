package feed

import (
	"context"
	"strings"

	"github.com/preston-bernstein/nfl-data-service/internal/domain/injuries"
	"github.com/preston-bernstein/nfl-data-service/internal/domain/rankings"
	"github.com/preston-bernstein/nfl-data-service/internal/domain/ratings"
	"github.com/preston-bernstein/nfl-data-service/internal/providers"
)

// Set exposes the feed-backed fetchers. PFF ratings come from the feed as
// well; callers may swap in a CSV loader instead.
func (c *Client) Set() providers.Set {
	return providers.Set{
		Injuries:     providers.FetcherFunc[injuries.TeamInjuries](c.Injuries),
		Madden:       providers.FetcherFunc[ratings.MaddenRating](c.MaddenRatings),
		PFF:          providers.FetcherFunc[ratings.PFFRating](c.PFFRatings),
		LineRankings: providers.FetcherFunc[rankings.TeamRanking](c.LineRankings),
	}
}

// Injuries fetches the league injury report.
func (c *Client) Injuries(ctx context.Context) ([]injuries.TeamInjuries, error) {
	return fetchAll[injuries.TeamInjuries](ctx, c, providers.SourceInjuries, injuriesPath)
}

// MaddenRatings fetches every page of Madden ratings. Missing teams become the
// Unknown sentinel and untagged rows are tagged with the Madden source.
func (c *Client) MaddenRatings(ctx context.Context) ([]ratings.MaddenRating, error) {
	items, err := fetchAll[ratings.MaddenRating](ctx, c, providers.SourceMadden, maddenPath)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if strings.TrimSpace(items[i].Team) == "" {
			items[i].Team = ratings.UnknownTeam
		}
		if items[i].Source == "" {
			items[i].Source = ratings.SourceMadden
		}
	}
	return items, nil
}

// PFFRatings fetches Pro Football Focus rows.
func (c *Client) PFFRatings(ctx context.Context) ([]ratings.PFFRating, error) {
	items, err := fetchAll[ratings.PFFRating](ctx, c, providers.SourcePFF, pffPath)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Position = strings.ToUpper(items[i].Position)
		if items[i].Source == "" {
			items[i].Source = ratings.SourcePFF
		}
	}
	return items, nil
}

// LineRankings fetches offensive line rankings.
func (c *Client) LineRankings(ctx context.Context) ([]rankings.TeamRanking, error) {
	return fetchAll[rankings.TeamRanking](ctx, c, providers.SourceLineRankings, lineRankingsPath)
}
