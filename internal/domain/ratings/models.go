package ratings

const (
	// SourceMadden tags records scraped from the Madden NFL ratings site.
	SourceMadden = "Madden NFL"
	// SourcePFF tags records loaded from the Pro Football Focus export.
	SourcePFF = "Pro Football Focus"
	// UnknownTeam is the sentinel upstream sources use when a team could not be determined.
	UnknownTeam = "Unknown"
)

// MaddenRating is a single player rating from the Madden NFL source.
type MaddenRating struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Team     string `json:"team"`
	Overall  *int   `json:"overall,omitempty"`
	Source   string `json:"source"`
}

// OverallValue returns the overall rating when present.
func (r MaddenRating) OverallValue() (float64, bool) {
	if r.Overall == nil {
		return 0, false
	}
	return float64(*r.Overall), true
}

// PFFRating is a single player row from the Pro Football Focus export.
// Numeric columns are optional; empty, "null" and "N/A" cells are left nil.
type PFFRating struct {
	Name            string   `json:"name"`
	Position        string   `json:"position"`
	Team            string   `json:"team,omitempty"`
	OverallRank     *float64 `json:"overall_rank,omitempty"`
	PositionRank    *float64 `json:"position_rank,omitempty"`
	ByeWeek         *int     `json:"bye_week,omitempty"`
	ADP             *float64 `json:"adp,omitempty"`
	ProjectedPoints *float64 `json:"projected_points,omitempty"`
	AuctionValue    *float64 `json:"auction_value,omitempty"`
	Source          string   `json:"source"`
}

// OverallRankValue returns the overall rank when present.
func (r PFFRating) OverallRankValue() (float64, bool) {
	return deref(r.OverallRank)
}

// ProjectedPointsValue returns projected fantasy points when present.
func (r PFFRating) ProjectedPointsValue() (float64, bool) {
	return deref(r.ProjectedPoints)
}

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}
