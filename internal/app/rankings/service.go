package rankings

import (
	"context"

	domainrankings "github.com/preston-bernstein/nfl-data-service/internal/domain/rankings"
	"github.com/preston-bernstein/nfl-data-service/internal/query"
	"github.com/preston-bernstein/nfl-data-service/internal/stats"
)

// Rank distribution buckets reported by Stats.
const (
	BucketTop10    = "top_10"
	Bucket11To20   = "11_20"
	Bucket21To32   = "21_32"
	BucketUnranked = "unranked"
)

// MetricRank names the summary of the rank field itself.
const MetricRank = "rank"

// DefaultTopN is the list length used when a caller does not ask for one.
const DefaultTopN = 10

// Reader supplies the current offensive line rankings in rank order.
type Reader interface {
	All(ctx context.Context) ([]domainrankings.TeamRanking, error)
}

// Service answers offensive line ranking queries.
type Service struct {
	reader Reader
}

// NewService constructs a Service backed by reader.
func NewService(reader Reader) *Service {
	return &Service{reader: reader}
}

// Rankings returns every team's ranking in upstream order.
func (s *Service) Rankings(ctx context.Context) ([]domainrankings.TeamRanking, error) {
	return s.reader.All(ctx)
}

// ByTeam returns one team's ranking.
func (s *Service) ByTeam(ctx context.Context, team string) (domainrankings.TeamRanking, bool, error) {
	items, err := s.reader.All(ctx)
	if err != nil {
		return domainrankings.TeamRanking{}, false, err
	}
	r, ok := query.FindBy(items, func(r domainrankings.TeamRanking) string { return r.Team }, team)
	return r, ok, nil
}

// Top returns the first n rankings without re-sorting.
func (s *Service) Top(ctx context.Context, n int) ([]domainrankings.TeamRanking, error) {
	items, err := s.reader.All(ctx)
	if err != nil {
		return nil, err
	}
	return query.TopN(items, n), nil
}

// ByRankRange returns rankings whose rank lies in [min, max].
func (s *Service) ByRankRange(ctx context.Context, min, max float64) ([]domainrankings.TeamRanking, error) {
	items, err := s.reader.All(ctx)
	if err != nil {
		return nil, err
	}
	return query.ByRange(items, domainrankings.TeamRanking.RankValue, min, max), nil
}

// Stats reports the rank distribution and summaries of rank and every key detail metric.
func (s *Service) Stats(ctx context.Context) (stats.Summary, error) {
	items, err := s.reader.All(ctx)
	if err != nil {
		return stats.Summary{}, err
	}

	metrics := make([]stats.Metric[domainrankings.TeamRanking], 0, len(domainrankings.DetailKeys())+1)
	metrics = append(metrics, stats.Metric[domainrankings.TeamRanking]{Name: MetricRank, Value: domainrankings.TeamRanking.RankValue})
	for _, key := range domainrankings.DetailKeys() {
		key := key
		metrics = append(metrics, stats.Metric[domainrankings.TeamRanking]{
			Name:  key,
			Value: func(r domainrankings.TeamRanking) (float64, bool) { return r.Detail(key) },
		})
	}
	return stats.Aggregate(items,
		[]stats.Category[domainrankings.TeamRanking]{{Name: "rank_distribution", Value: rankBucket}},
		metrics,
	), nil
}

func rankBucket(r domainrankings.TeamRanking) string {
	rank, ok := r.RankValue()
	switch {
	case !ok || rank < 1:
		return BucketUnranked
	case rank <= 10:
		return BucketTop10
	case rank <= 20:
		return Bucket11To20
	case rank <= domainrankings.TeamCount:
		return Bucket21To32
	default:
		return BucketUnranked
	}
}
