package pff

import (
	"context"

	"github.com/preston-bernstein/nfl-data-service/internal/domain/ratings"
	"github.com/preston-bernstein/nfl-data-service/internal/query"
	"github.com/preston-bernstein/nfl-data-service/internal/stats"
)

// DefaultTopN is the list length used when a caller does not ask for one.
const DefaultTopN = 10

// Reader supplies the current PFF ratings.
type Reader interface {
	All(ctx context.Context) ([]ratings.PFFRating, error)
}

// Service answers Pro Football Focus ratings queries.
type Service struct {
	reader Reader
}

// NewService constructs a Service backed by reader.
func NewService(reader Reader) *Service {
	return &Service{reader: reader}
}

func position(r ratings.PFFRating) string { return r.Position }
func team(r ratings.PFFRating) string     { return r.Team }
func name(r ratings.PFFRating) string     { return r.Name }

// Ratings returns every row in file order.
func (s *Service) Ratings(ctx context.Context) ([]ratings.PFFRating, error) {
	return s.reader.All(ctx)
}

// ByPosition returns rows at a position.
func (s *Service) ByPosition(ctx context.Context, pos string) ([]ratings.PFFRating, error) {
	items, err := s.reader.All(ctx)
	if err != nil {
		return nil, err
	}
	return query.FilterBy(items, position, pos), nil
}

// ByTeam returns rows for a team.
func (s *Service) ByTeam(ctx context.Context, t string) ([]ratings.PFFRating, error) {
	items, err := s.reader.All(ctx)
	if err != nil {
		return nil, err
	}
	return query.FilterBy(items, team, t), nil
}

// ByRankRange returns rows whose overall rank lies in [min, max].
func (s *Service) ByRankRange(ctx context.Context, min, max float64) ([]ratings.PFFRating, error) {
	items, err := s.reader.All(ctx)
	if err != nil {
		return nil, err
	}
	return query.ByRange(items, ratings.PFFRating.OverallRankValue, min, max), nil
}

// TopByPosition returns the n best ranked rows at a position. Rows without
// an overall rank come last.
func (s *Service) TopByPosition(ctx context.Context, pos string, n int) ([]ratings.PFFRating, error) {
	items, err := s.ByPosition(ctx, pos)
	if err != nil {
		return nil, err
	}
	return query.TopN(query.SortBy(items, ratings.PFFRating.OverallRankValue), n), nil
}

// ByName finds a row by player name.
func (s *Service) ByName(ctx context.Context, player string) (ratings.PFFRating, bool, error) {
	items, err := s.reader.All(ctx)
	if err != nil {
		return ratings.PFFRating{}, false, err
	}
	r, ok := query.FindBy(items, name, player)
	return r, ok, nil
}

// Stats counts rows by position and team and summarizes rank and projected points.
func (s *Service) Stats(ctx context.Context) (stats.Summary, error) {
	items, err := s.reader.All(ctx)
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Aggregate(items,
		[]stats.Category[ratings.PFFRating]{
			{Name: "position", Value: position},
			{Name: "team", Value: team},
		},
		[]stats.Metric[ratings.PFFRating]{
			{Name: "overall_rank", Value: ratings.PFFRating.OverallRankValue},
			{Name: "projected_points", Value: ratings.PFFRating.ProjectedPointsValue},
		},
	), nil
}
