package stats

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type player struct {
	Position string
	Points   *float64
	Rank     *float64
}

func f(v float64) *float64 { return &v }

func points(p player) (float64, bool) {
	if p.Points == nil {
		return 0, false
	}
	return *p.Points, true
}

func rank(p player) (float64, bool) {
	if p.Rank == nil {
		return 0, false
	}
	return *p.Rank, true
}

var (
	byPosition = []Category[player]{{Name: "position", Value: func(p player) string { return p.Position }}}
	numeric    = []Metric[player]{{Name: "points", Value: points}, {Name: "rank", Value: rank}}
)

func TestAggregateEmptyInputIsNotLoaded(t *testing.T) {
	summary := Aggregate[player](nil, byPosition, numeric)
	assert.False(t, summary.Loaded)
	assert.Zero(t, summary.Total)
	assert.Nil(t, summary.Metrics)
}

func TestAggregateCountsAndMetrics(t *testing.T) {
	items := []player{
		{Position: "QB", Points: f(300), Rank: f(1)},
		{Position: "QB", Points: f(250)},
		{Position: "WR", Points: f(200), Rank: f(4)},
		{Points: f(150)},
	}

	summary := Aggregate(items, byPosition, numeric)
	require.True(t, summary.Loaded)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, map[string]int{"QB": 2, "WR": 1, UnknownValue: 1}, summary.Counts["position"])

	pts := summary.Metrics["points"]
	assert.Equal(t, 4, pts.Count)
	assert.Equal(t, 150.0, *pts.Min)
	assert.Equal(t, 300.0, *pts.Max)
	assert.InDelta(t, 225.0, *pts.Avg, 1e-9)

	r := summary.Metrics["rank"]
	assert.Equal(t, 2, r.Count)
	assert.Equal(t, 1.0, *r.Min)
	assert.Equal(t, 4.0, *r.Max)
	assert.InDelta(t, 2.5, *r.Avg, 1e-9)
}

func TestAggregateAbsentMetricIsNullNotZero(t *testing.T) {
	summary := Aggregate([]player{{Position: "CB"}}, byPosition, numeric)
	require.True(t, summary.Loaded)

	r := summary.Metrics["rank"]
	assert.Zero(t, r.Count)
	assert.Nil(t, r.Min)
	assert.Nil(t, r.Max)
	assert.Nil(t, r.Avg)

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":0,"min":null,"max":null,"avg":null}`, string(raw))
}

func TestAggregateNegativeValues(t *testing.T) {
	summary := Aggregate([]player{{Points: f(-2)}, {Points: f(-5)}}, nil, numeric)
	pts := summary.Metrics["points"]
	assert.Equal(t, -5.0, *pts.Min)
	assert.Equal(t, -2.0, *pts.Max)
}

func TestZeroIsLoadedWithEmptyCounts(t *testing.T) {
	summary := Zero(byPosition, numeric)
	require.True(t, summary.Loaded)
	assert.Zero(t, summary.Total)
	assert.Equal(t, map[string]int{}, summary.Counts["position"])
	assert.Equal(t, MetricSummary{}, summary.Metrics["points"])

	raw, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":0,"counts":{"position":{}},"metrics":{"points":{"count":0,"min":null,"max":null,"avg":null},"rank":{"count":0,"min":null,"max":null,"avg":null}}}`, string(raw))
}
