package injuries

import (
	"context"
	"strings"

	domaininjuries "github.com/preston-bernstein/nfl-data-service/internal/domain/injuries"
	"github.com/preston-bernstein/nfl-data-service/internal/query"
	"github.com/preston-bernstein/nfl-data-service/internal/stats"
)

// Reader supplies the current injury report.
type Reader interface {
	All(ctx context.Context) ([]domaininjuries.TeamInjuries, error)
}

// Service answers injury report queries.
type Service struct {
	reader Reader
}

// NewService constructs a Service backed by reader.
func NewService(reader Reader) *Service {
	return &Service{reader: reader}
}

// Reports returns the report for every team.
func (s *Service) Reports(ctx context.Context) ([]domaininjuries.TeamInjuries, error) {
	return s.reader.All(ctx)
}

// ByTeam returns one team's report, matching the team name case-insensitively.
func (s *Service) ByTeam(ctx context.Context, team string) (domaininjuries.TeamInjuries, bool, error) {
	reports, err := s.reader.All(ctx)
	if err != nil {
		return domaininjuries.TeamInjuries{}, false, err
	}
	report, ok := query.FindBy(reports, func(r domaininjuries.TeamInjuries) string {
		return strings.TrimSpace(r.Team)
	}, strings.TrimSpace(team))
	return report, ok, nil
}

// ByStatus returns injured players across the league with the given status.
func (s *Service) ByStatus(ctx context.Context, status string) ([]domaininjuries.ReportEntry, error) {
	reports, err := s.reader.All(ctx)
	if err != nil {
		return nil, err
	}
	return query.FilterBy(domaininjuries.Flatten(reports), func(e domaininjuries.ReportEntry) string {
		return e.Status
	}, status), nil
}

var entryCategories = []stats.Category[domaininjuries.ReportEntry]{
	{Name: "status", Value: func(e domaininjuries.ReportEntry) string { return e.Status }},
	{Name: "position", Value: func(e domaininjuries.ReportEntry) string { return e.Position }},
	{Name: "team", Value: func(e domaininjuries.ReportEntry) string { return e.Team }},
}

// Stats counts injured players by status, position and team. Teams that
// reported no injuries still count as loaded data.
func (s *Service) Stats(ctx context.Context) (stats.Summary, error) {
	reports, err := s.reader.All(ctx)
	if err != nil {
		return stats.Summary{}, err
	}
	entries := domaininjuries.Flatten(reports)
	if len(entries) == 0 && len(reports) > 0 {
		return stats.Zero(entryCategories, nil), nil
	}
	return stats.Aggregate(entries, entryCategories, nil), nil
}
