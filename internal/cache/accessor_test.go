package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nfl-data-service/internal/metrics"
	"github.com/preston-bernstein/nfl-data-service/internal/providers"
	"github.com/preston-bernstein/nfl-data-service/internal/teststubs"
	"github.com/preston-bernstein/nfl-data-service/internal/testutil"
)

type record struct {
	Name string `json:"name"`
}

var testSource = Source{Name: "madden", Key: "madden_ratings", TTL: time.Hour}

func TestAccessorFetchesOnceWhileFresh(t *testing.T) {
	fetcher := &teststubs.StubFetcher[record]{Items: []record{{Name: "Devon Witherspoon"}}}
	recorder := metrics.NewRecorder()
	acc := NewAccessor[record](testSource, NewFileStore(t.TempDir(), nil), fetcher, nil, recorder)

	for i := 0; i < 3; i++ {
		items, err := acc.All(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Devon Witherspoon", items[0].Name)
	}
	assert.Equal(t, int32(1), fetcher.Calls.Load())
	assert.Equal(t, 1, recorder.CacheLookups("madden", "miss"))
	assert.Equal(t, 2, recorder.CacheLookups("madden", "hit"))
}

func TestAccessorRefetchesAfterExpiry(t *testing.T) {
	clock := testutil.NewClock(epoch)
	fetcher := &teststubs.StubFetcher[record]{Items: []record{{Name: "a"}}}
	store := NewFileStore(t.TempDir(), nil, WithClock(clock.Now))
	recorder := metrics.NewRecorder()
	acc := NewAccessor[record](testSource, store, fetcher, nil, recorder)

	_, err := acc.All(context.Background())
	require.NoError(t, err)
	clock.Advance(testSource.TTL + time.Second)
	_, err = acc.All(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), fetcher.Calls.Load())
	assert.Equal(t, 1, recorder.CacheLookups("madden", "expired"))
}

func TestAccessorLogsAgeFromStoreClock(t *testing.T) {
	clock := testutil.NewClock(epoch)
	logger, buf := testutil.NewBufferLogger()
	fetcher := &teststubs.StubFetcher[record]{Items: []record{{Name: "a"}}}
	store := NewFileStore(t.TempDir(), nil, WithClock(clock.Now))
	acc := NewAccessor[record](testSource, store, fetcher, logger, nil)

	_, err := acc.All(context.Background())
	require.NoError(t, err)
	clock.Advance(90 * time.Second)
	_, err = acc.All(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "msg=\"cache hit\"")
	assert.Contains(t, buf.String(), "age_seconds=90")
}

func TestAccessorDoesNotCacheFailures(t *testing.T) {
	boom := errors.New("upstream down")
	fetcher := &teststubs.SequenceFetcher[record]{Results: []teststubs.Result[record]{
		{Err: boom},
		{Items: []record{{Name: "a"}}},
	}}
	store := NewFileStore(t.TempDir(), nil)
	acc := NewAccessor[record](testSource, store, fetcher, nil, nil)

	_, err := acc.All(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	fe, ok := providers.AsFetchError(err)
	require.True(t, ok)
	assert.Equal(t, "madden", fe.Source)

	_, statErr := os.Stat(store.Path(testSource.Key))
	assert.True(t, os.IsNotExist(statErr), "failed fetch must not write the cache")

	items, err := acc.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, fetcher.Calls())
}

func TestAccessorCachesEmptyResults(t *testing.T) {
	fetcher := &teststubs.StubFetcher[record]{}
	store := NewFileStore(t.TempDir(), nil)
	acc := NewAccessor[record](testSource, store, fetcher, nil, nil)

	for i := 0; i < 2; i++ {
		items, err := acc.All(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	}
	assert.Equal(t, int32(1), fetcher.Calls.Load())
	assert.JSONEq(t, `[]`, string(store.Lookup(context.Background(), testSource.Key, time.Hour).Data))
}

func TestAccessorTreatsMismatchedPayloadAsMiss(t *testing.T) {
	store := NewFileStore(t.TempDir(), nil)
	require.NoError(t, store.Save(context.Background(), testSource.Key, map[string]int{"not": 1}))

	fetcher := &teststubs.StubFetcher[record]{Items: []record{{Name: "fresh"}}}
	recorder := metrics.NewRecorder()
	acc := NewAccessor[record](testSource, store, fetcher, nil, recorder)

	items, err := acc.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []record{{Name: "fresh"}}, items)
	assert.Equal(t, int32(1), fetcher.Calls.Load())
	assert.Equal(t, 1, recorder.CacheLookups("madden", "unreadable"))
}

func TestAccessorRefreshBypassesLookup(t *testing.T) {
	fetcher := &teststubs.StubFetcher[record]{Items: []record{{Name: "a"}, {Name: "b"}}}
	acc := NewAccessor[record](testSource, NewFileStore(t.TempDir(), nil), fetcher, nil, nil)

	_, err := acc.All(context.Background())
	require.NoError(t, err)
	n, err := acc.Reload(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, int32(2), fetcher.Calls.Load())
	assert.Equal(t, testSource, acc.Source())
}

func TestAccessorWithoutFetcher(t *testing.T) {
	acc := NewAccessor[record](testSource, NewFileStore(t.TempDir(), nil), nil, nil, nil)

	_, err := acc.All(context.Background())
	assert.ErrorIs(t, err, providers.ErrProviderUnavailable)
}

type failingStore struct {
	saves int
}

func (s *failingStore) Lookup(context.Context, string, time.Duration) Lookup {
	return Lookup{Status: StatusMiss}
}

func (s *failingStore) Save(context.Context, string, any) error {
	s.saves++
	return errors.New("disk full")
}

func TestAccessorSwallowsSaveFailures(t *testing.T) {
	store := &failingStore{}
	fetcher := &teststubs.StubFetcher[record]{Items: []record{{Name: "a"}}}
	acc := NewAccessor[record](testSource, store, fetcher, nil, nil)

	items, err := acc.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, store.saves)
}

func TestSeparateSourcesDoNotShareEntries(t *testing.T) {
	store := NewFileStore(t.TempDir(), nil)
	injuries := &teststubs.StubFetcher[record]{Items: []record{{Name: "injury"}}}
	ratings := &teststubs.StubFetcher[record]{Items: []record{{Name: "rating"}}}

	a := NewAccessor[record](Source{Name: "injuries", Key: "nfl_injuries", TTL: time.Hour}, store, injuries, nil, nil)
	b := NewAccessor[record](testSource, store, ratings, nil, nil)

	gotA, err := a.All(context.Background())
	require.NoError(t, err)
	gotB, err := b.All(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "injury", gotA[0].Name)
	assert.Equal(t, "rating", gotB[0].Name)
	assert.Equal(t, int32(1), ratings.Calls.Load())
}
