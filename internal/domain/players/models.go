package players

import "github.com/preston-bernstein/nfl-data-service/internal/domain/ratings"

// SourceRating is one source's contribution to a unified player.
// Exactly one of Madden or PFF is set, matching Source.
type SourceRating struct {
	Source string                `json:"source"`
	Madden *ratings.MaddenRating `json:"madden,omitempty"`
	PFF    *ratings.PFFRating    `json:"pff,omitempty"`
}

// UnifiedPlayer is the merged view of one player across rating sources.
type UnifiedPlayer struct {
	Identity    string         `json:"identity"`
	DisplayName string         `json:"name"`
	Position    string         `json:"position"`
	Team        string         `json:"team"`
	Ratings     []SourceRating `json:"ratings"`
}

// Sources returns the source tags contributing to the player, in order.
func (p UnifiedPlayer) Sources() []string {
	out := make([]string, 0, len(p.Ratings))
	for _, r := range p.Ratings {
		out = append(out, r.Source)
	}
	return out
}

// Coverage labels how many sources contributed ("single" or "both").
func (p UnifiedPlayer) Coverage() string {
	if len(p.Ratings) > 1 {
		return "both"
	}
	return "single"
}
