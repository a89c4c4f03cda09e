package madden

import (
	"context"

	"github.com/preston-bernstein/nfl-data-service/internal/domain/ratings"
	"github.com/preston-bernstein/nfl-data-service/internal/query"
	"github.com/preston-bernstein/nfl-data-service/internal/stats"
)

// Reader supplies the current Madden ratings.
type Reader interface {
	All(ctx context.Context) ([]ratings.MaddenRating, error)
}

// Service answers Madden ratings queries.
type Service struct {
	reader Reader
}

// NewService constructs a Service backed by reader.
func NewService(reader Reader) *Service {
	return &Service{reader: reader}
}

// Ratings returns every Madden rating in source order.
func (s *Service) Ratings(ctx context.Context) ([]ratings.MaddenRating, error) {
	return s.reader.All(ctx)
}

// BySource returns ratings carrying the given source tag.
func (s *Service) BySource(ctx context.Context, source string) ([]ratings.MaddenRating, error) {
	return s.filter(ctx, func(r ratings.MaddenRating) string { return r.Source }, source)
}

// ByPosition returns ratings at a position.
func (s *Service) ByPosition(ctx context.Context, position string) ([]ratings.MaddenRating, error) {
	return s.filter(ctx, func(r ratings.MaddenRating) string { return r.Position }, position)
}

// ByTeam returns ratings for one team.
func (s *Service) ByTeam(ctx context.Context, team string) ([]ratings.MaddenRating, error) {
	return s.filter(ctx, func(r ratings.MaddenRating) string { return r.Team }, team)
}

// ByName finds a player's rating by display name.
func (s *Service) ByName(ctx context.Context, name string) (ratings.MaddenRating, bool, error) {
	items, err := s.reader.All(ctx)
	if err != nil {
		return ratings.MaddenRating{}, false, err
	}
	r, ok := query.FindBy(items, func(r ratings.MaddenRating) string { return r.Name }, name)
	return r, ok, nil
}

// Stats summarizes ratings by position and team along with the overall rating spread.
func (s *Service) Stats(ctx context.Context) (stats.Summary, error) {
	items, err := s.reader.All(ctx)
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Aggregate(items,
		[]stats.Category[ratings.MaddenRating]{
			{Name: "position", Value: func(r ratings.MaddenRating) string { return r.Position }},
			{Name: "team", Value: func(r ratings.MaddenRating) string { return r.Team }},
		},
		[]stats.Metric[ratings.MaddenRating]{
			{Name: "overall", Value: ratings.MaddenRating.OverallValue},
		},
	), nil
}

func (s *Service) filter(ctx context.Context, field query.Field[ratings.MaddenRating], value string) ([]ratings.MaddenRating, error) {
	items, err := s.reader.All(ctx)
	if err != nil {
		return nil, err
	}
	return query.FilterBy(items, field, value), nil
}
