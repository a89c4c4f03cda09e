// Package reconcile merges Madden and PFF rating rows into one record per player.
package reconcile

import (
	"github.com/preston-bernstein/nfl-data-service/internal/domain/players"
	"github.com/preston-bernstein/nfl-data-service/internal/domain/ratings"
	"github.com/preston-bernstein/nfl-data-service/internal/identity"
)

type slot struct {
	madden *ratings.MaddenRating
	pff    *ratings.PFFRating
}

// teamPriority lists where a unified player's team comes from, most trusted first.
var teamPriority = []func(slot) string{
	func(s slot) string {
		if s.pff == nil {
			return ""
		}
		return s.pff.Team
	},
	func(s slot) string {
		if s.madden == nil {
			return ""
		}
		return s.madden.Team
	},
}

// Players performs a full outer join of madden and pff keyed by normalized
// name. Output order is madden order followed by identities first seen in pff.
// Rows whose name normalizes to "" are skipped. A later row with the same
// identity in the same source replaces the earlier one but keeps its position.
func Players(madden []ratings.MaddenRating, pff []ratings.PFFRating) []players.UnifiedPlayer {
	var (
		order []string
		slots = make(map[string]*slot)
	)
	claim := func(name string) *slot {
		key := identity.Normalize(name)
		if key == "" {
			return nil
		}
		s, ok := slots[key]
		if !ok {
			s = &slot{}
			slots[key] = s
			order = append(order, key)
		}
		return s
	}

	for i := range madden {
		if s := claim(madden[i].Name); s != nil {
			row := madden[i]
			s.madden = &row
		}
	}
	for i := range pff {
		if s := claim(pff[i].Name); s != nil {
			row := pff[i]
			s.pff = &row
		}
	}

	out := make([]players.UnifiedPlayer, 0, len(order))
	for _, key := range order {
		out = append(out, unify(key, *slots[key]))
	}
	return out
}

func unify(key string, s slot) players.UnifiedPlayer {
	p := players.UnifiedPlayer{
		Identity: key,
		Team:     resolveTeam(s),
		Ratings:  make([]players.SourceRating, 0, 2),
	}
	if s.madden != nil {
		p.DisplayName = s.madden.Name
		p.Position = s.madden.Position
		p.Ratings = append(p.Ratings, players.SourceRating{
			Source: sourceOr(s.madden.Source, ratings.SourceMadden),
			Madden: s.madden,
		})
	} else if s.pff != nil {
		p.DisplayName = s.pff.Name
		p.Position = s.pff.Position
	}
	if s.pff != nil {
		p.Ratings = append(p.Ratings, players.SourceRating{
			Source: sourceOr(s.pff.Source, ratings.SourcePFF),
			PFF:    s.pff,
		})
	}
	return p
}

func resolveTeam(s slot) string {
	for _, team := range teamPriority {
		if v := team(s); v != "" && v != ratings.UnknownTeam {
			return v
		}
	}
	return ratings.UnknownTeam
}

func sourceOr(tag, fallback string) string {
	if tag != "" {
		return tag
	}
	return fallback
}
