package players

import (
	"context"

	domainplayers "github.com/preston-bernstein/nfl-data-service/internal/domain/players"
	"github.com/preston-bernstein/nfl-data-service/internal/domain/ratings"
	"github.com/preston-bernstein/nfl-data-service/internal/identity"
	"github.com/preston-bernstein/nfl-data-service/internal/query"
	"github.com/preston-bernstein/nfl-data-service/internal/reconcile"
	"github.com/preston-bernstein/nfl-data-service/internal/stats"
)

// MaddenReader supplies Madden ratings.
type MaddenReader interface {
	All(ctx context.Context) ([]ratings.MaddenRating, error)
}

// PFFReader supplies PFF ratings.
type PFFReader interface {
	All(ctx context.Context) ([]ratings.PFFRating, error)
}

// Service serves players reconciled across both rating sources. The merge is
// recomputed on every call from the cached source lists.
type Service struct {
	madden MaddenReader
	pff    PFFReader
}

// NewService constructs a Service over both rating sources.
func NewService(madden MaddenReader, pff PFFReader) *Service {
	return &Service{madden: madden, pff: pff}
}

// Players returns every unified player.
func (s *Service) Players(ctx context.Context) ([]domainplayers.UnifiedPlayer, error) {
	madden, err := s.madden.All(ctx)
	if err != nil {
		return nil, err
	}
	pff, err := s.pff.All(ctx)
	if err != nil {
		return nil, err
	}
	return reconcile.Players(madden, pff), nil
}

// ByName finds a player by any spelling that normalizes to the same identity.
func (s *Service) ByName(ctx context.Context, name string) (domainplayers.UnifiedPlayer, bool, error) {
	key := identity.Normalize(name)
	if key == "" {
		return domainplayers.UnifiedPlayer{}, false, nil
	}
	all, err := s.Players(ctx)
	if err != nil {
		return domainplayers.UnifiedPlayer{}, false, err
	}
	p, ok := query.FindBy(all, func(p domainplayers.UnifiedPlayer) string { return p.Identity }, key)
	return p, ok, nil
}

// ByPosition returns unified players at a position.
func (s *Service) ByPosition(ctx context.Context, position string) ([]domainplayers.UnifiedPlayer, error) {
	all, err := s.Players(ctx)
	if err != nil {
		return nil, err
	}
	return query.FilterBy(all, func(p domainplayers.UnifiedPlayer) string { return p.Position }, position), nil
}

// ByTeam returns unified players on a team.
func (s *Service) ByTeam(ctx context.Context, team string) ([]domainplayers.UnifiedPlayer, error) {
	all, err := s.Players(ctx)
	if err != nil {
		return nil, err
	}
	return query.FilterBy(all, func(p domainplayers.UnifiedPlayer) string { return p.Team }, team), nil
}

// Stats counts unified players by position, team and source coverage.
func (s *Service) Stats(ctx context.Context) (stats.Summary, error) {
	all, err := s.Players(ctx)
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Aggregate(all, []stats.Category[domainplayers.UnifiedPlayer]{
		{Name: "position", Value: func(p domainplayers.UnifiedPlayer) string { return p.Position }},
		{Name: "team", Value: func(p domainplayers.UnifiedPlayer) string { return p.Team }},
		{Name: "coverage", Value: domainplayers.UnifiedPlayer.Coverage},
	}, nil), nil
}
