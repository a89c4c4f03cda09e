package players

import (
	"reflect"
	"testing"
)

func TestUnifiedPlayerJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	playerType := reflect.TypeOf(UnifiedPlayer{})
	fields := []fieldCheck{
		{"Identity", "identity"},
		{"DisplayName", "name"},
		{"Position", "position"},
		{"Team", "team"},
		{"Ratings", "ratings"},
	}
	for _, fc := range fields {
		f, ok := playerType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestSourcesAndCoverage(t *testing.T) {
	p := UnifiedPlayer{Ratings: []SourceRating{{Source: "A"}, {Source: "B"}}}
	if got := p.Sources(); len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Fatalf("unexpected sources %v", got)
	}
	if p.Coverage() != "both" {
		t.Fatalf("expected both coverage")
	}
	if (UnifiedPlayer{Ratings: []SourceRating{{Source: "A"}}}).Coverage() != "single" {
		t.Fatalf("expected single coverage")
	}
}
