package pff

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nfl-data-service/internal/domain/ratings"
	"github.com/preston-bernstein/nfl-data-service/internal/teststubs"
	"github.com/preston-bernstein/nfl-data-service/internal/testutil"
)

func newService(items ...ratings.PFFRating) *Service {
	return NewService(&teststubs.StubReader[ratings.PFFRating]{Items: items})
}

func sample() []ratings.PFFRating {
	return []ratings.PFFRating{
		testutil.SamplePFF("Josh Allen", "QB", "BUF", 12, 380),
		testutil.SamplePFF("Lamar Jackson", "QB", "BAL", 8, 375),
		{Name: "Backup", Position: "QB", Team: "BUF", Source: ratings.SourcePFF},
		testutil.SamplePFF("Ja'Marr Chase", "WR", "CIN", 1, 320),
	}
}

func TestTopByPositionSortsByRank(t *testing.T) {
	svc := newService(sample()...)

	top, err := svc.TopByPosition(context.Background(), "qb", 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Lamar Jackson", top[0].Name)
	assert.Equal(t, "Josh Allen", top[1].Name)

	all, err := svc.TopByPosition(context.Background(), "QB", DefaultTopN)
	require.NoError(t, err)
	assert.Equal(t, "Backup", all[len(all)-1].Name, "unranked rows sort last")
}

func TestByRankRangeSkipsUnranked(t *testing.T) {
	svc := newService(sample()...)

	got, err := svc.ByRankRange(context.Background(), 1, 12)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	for _, r := range got {
		assert.NotEqual(t, "Backup", r.Name)
	}
}

func TestFiltersAndLookup(t *testing.T) {
	svc := newService(sample()...)
	ctx := context.Background()

	buf, err := svc.ByTeam(ctx, "buf")
	require.NoError(t, err)
	assert.Len(t, buf, 2)

	wrs, err := svc.ByPosition(ctx, "WR")
	require.NoError(t, err)
	assert.Len(t, wrs, 1)

	chase, ok, err := svc.ByName(ctx, "ja'marr chase")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "CIN", chase.Team)

	_, ok, err = svc.ByName(ctx, "Nobody")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStats(t *testing.T) {
	summary, err := newService(sample()...).Stats(context.Background())
	require.NoError(t, err)
	require.True(t, summary.Loaded)

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 3, summary.Counts["position"]["QB"])
	rank := summary.Metrics["overall_rank"]
	assert.Equal(t, 3, rank.Count)
	assert.Equal(t, 1.0, *rank.Min)
	assert.Equal(t, 12.0, *rank.Max)
	assert.InDelta(t, 7.0, *rank.Avg, 1e-9)
}

func TestEmptyDatasetIsNotLoaded(t *testing.T) {
	summary, err := newService().Stats(context.Background())
	require.NoError(t, err)
	assert.False(t, summary.Loaded)
}

func TestErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&teststubs.StubReader[ratings.PFFRating]{Err: boom})

	_, err := svc.TopByPosition(context.Background(), "QB", 5)
	assert.ErrorIs(t, err, boom)
	_, err = svc.ByRankRange(context.Background(), 1, 2)
	assert.ErrorIs(t, err, boom)
}
