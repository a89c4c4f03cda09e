package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nfl-data-service/internal/domain/ratings"
	"github.com/preston-bernstein/nfl-data-service/internal/providers"
)

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestMaddenRatingsPaginatesUntilEmptyPage(t *testing.T) {
	var pages []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, maddenPath, r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		page := r.URL.Query().Get("page")
		pages = append(pages, page)
		switch page {
		case "1":
			writeJSON(w, http.StatusOK, `{"data":[{"name":"Devon Witherspoon","position":"CB","team":"Seattle Seahawks","overall":88},{"name":"No Team","position":"QB","overall":70}]}`)
		case "2":
			writeJSON(w, http.StatusOK, `{"data":[{"name":"Patrick Mahomes","position":"QB","team":"Kansas City Chiefs","overall":99,"source":"Madden NFL"}]}`)
		default:
			writeJSON(w, http.StatusOK, `{"data":[]}`)
		}
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL + "/", APIKey: "key"}, nil)
	defer client.Close()

	items, err := client.MaddenRatings(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"1", "2", "3"}, pages)

	assert.Equal(t, "Devon Witherspoon", items[0].Name)
	require.NotNil(t, items[0].Overall)
	assert.Equal(t, 88, *items[0].Overall)
	assert.Equal(t, ratings.SourceMadden, items[0].Source)
	assert.Equal(t, ratings.UnknownTeam, items[1].Team)
}

func TestFetchStopsAtTotalPages(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusOK, `{"data":[{"team":"Detroit Lions","injuries":[]}],"meta":{"total_pages":2}}`)
	}))
	defer srv.Close()

	items, err := NewClient(Config{BaseURL: srv.URL}, nil).Injuries(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchStopsAtMaxPages(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusOK, `{"data":[{"team":"Detroit Lions","rank":2}]}`)
	}))
	defer srv.Close()

	items, err := NewClient(Config{BaseURL: srv.URL, MaxPages: 3}, nil).LineRankings(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchReturnsFetchErrorOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, `{"error":"down"}`)
	}))
	defer srv.Close()

	_, err := NewClient(Config{BaseURL: srv.URL}, nil).PFFRatings(context.Background())
	fe, ok := providers.AsFetchError(err)
	require.True(t, ok, "expected fetch error, got %v", err)
	assert.Equal(t, providers.SourcePFF, fe.Source)
	assert.Equal(t, http.StatusServiceUnavailable, fe.StatusCode)
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusBadGateway, `{}`)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, TripAfter: 2, OpenTimeout: time.Minute}, nil)
	for i := 0; i < 2; i++ {
		_, err := client.Injuries(context.Background())
		require.Error(t, err)
	}

	_, err := client.MaddenRatings(context.Background())
	fe, ok := providers.AsFetchError(err)
	require.True(t, ok, fmt.Sprintf("expected fetch error, got %v", err))
	assert.Equal(t, "feed circuit open", fe.Message)
	assert.Equal(t, int32(2), calls.Load(), "open breaker must not reach upstream")
}

func TestSetExposesFetchers(t *testing.T) {
	set := NewClient(Config{BaseURL: "http://127.0.0.1:1"}, nil).Set()
	assert.NotNil(t, set.Injuries)
	assert.NotNil(t, set.Madden)
	assert.NotNil(t, set.PFF)
	assert.NotNil(t, set.LineRankings)
}
