package providers

import (
	"context"
	"testing"

	"github.com/preston-bernstein/nfl-data-service/internal/domain/rankings"
)

type testFetcher struct{}

func (t *testFetcher) Fetch(ctx context.Context) ([]rankings.TeamRanking, error) {
	_ = ctx
	return nil, nil
}

func TestFetcherInterfaceImplemented(t *testing.T) {
	var _ Fetcher[rankings.TeamRanking] = (*testFetcher)(nil)
}

func TestFetcherFunc(t *testing.T) {
	f := FetcherFunc[int](func(ctx context.Context) ([]int, error) {
		return []int{1, 2}, nil
	})
	got, err := f.Fetch(context.Background())
	if err != nil || len(got) != 2 {
		t.Fatalf("expected func result, got %v %v", got, err)
	}
}
