package madden

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/nfl-data-service/internal/domain/ratings"
	"github.com/preston-bernstein/nfl-data-service/internal/teststubs"
	"github.com/preston-bernstein/nfl-data-service/internal/testutil"
)

func sampleRatings() []ratings.MaddenRating {
	return []ratings.MaddenRating{
		testutil.SampleMadden("Devon Witherspoon", "CB", "Seattle Seahawks", 88),
		testutil.SampleMadden("Patrick Mahomes", "QB", "Kansas City Chiefs", 99),
		testutil.SampleMadden("Geno Smith", "QB", "Seattle Seahawks", 77),
		{Name: "Rookie", Position: "QB", Team: ratings.UnknownTeam, Source: "Other"},
	}
}

func TestMaddenServiceFilters(t *testing.T) {
	reader := &teststubs.StubReader[ratings.MaddenRating]{Items: sampleRatings()}
	svc := NewService(reader)
	ctx := context.Background()

	qbs, err := svc.ByPosition(ctx, "qb")
	if err != nil || len(qbs) != 3 {
		t.Fatalf("expected 3 qbs, got %d err %v", len(qbs), err)
	}
	seattle, _ := svc.ByTeam(ctx, "seattle seahawks")
	if len(seattle) != 2 {
		t.Fatalf("expected 2 seattle players, got %d", len(seattle))
	}
	tagged, _ := svc.BySource(ctx, ratings.SourceMadden)
	if len(tagged) != 3 {
		t.Fatalf("expected 3 madden-tagged ratings, got %d", len(tagged))
	}
	none, _ := svc.ByTeam(ctx, "Nowhere")
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", none)
	}
	if reader.Calls.Load() != 4 {
		t.Fatalf("expected a read per query, got %d", reader.Calls.Load())
	}
}

func TestMaddenServiceByName(t *testing.T) {
	svc := NewService(&teststubs.StubReader[ratings.MaddenRating]{Items: sampleRatings()})

	r, ok, err := svc.ByName(context.Background(), "devon witherspoon")
	if err != nil || !ok || *r.Overall != 88 {
		t.Fatalf("expected witherspoon, got %+v ok=%v err=%v", r, ok, err)
	}
	if _, ok, _ := svc.ByName(context.Background(), "nobody"); ok {
		t.Fatalf("expected not found")
	}
}

func TestMaddenServiceStats(t *testing.T) {
	svc := NewService(&teststubs.StubReader[ratings.MaddenRating]{Items: sampleRatings()})

	summary, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	overall := summary.Metrics["overall"]
	if overall.Count != 3 || *overall.Min != 77 || *overall.Max != 99 {
		t.Fatalf("unexpected overall summary %+v", overall)
	}
	if summary.Counts["position"]["QB"] != 3 || summary.Counts["team"][ratings.UnknownTeam] != 1 {
		t.Fatalf("unexpected counts %+v", summary.Counts)
	}
}

func TestMaddenServicePropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&teststubs.StubReader[ratings.MaddenRating]{Err: boom})

	if _, err := svc.ByPosition(context.Background(), "QB"); !errors.Is(err, boom) {
		t.Fatalf("expected error, got %v", err)
	}
	if _, _, err := svc.ByName(context.Background(), "x"); !errors.Is(err, boom) {
		t.Fatalf("expected error, got %v", err)
	}
	if _, err := svc.Stats(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected error, got %v", err)
	}
}
