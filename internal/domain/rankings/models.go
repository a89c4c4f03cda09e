package rankings

// Key detail metric names reported for each offensive line.
const (
	KeyOverallGrade           = "pff_overall_grade"
	KeyPassBlockingGrade      = "pff_pass_blocking_grade"
	KeyRunBlockingGrade       = "pff_run_blocking_grade"
	KeyPositionRank           = "position_rank"
	KeyPressuresAllowed       = "pressures_allowed"
	KeySacksAllowed           = "sacks_allowed"
	KeyPassBlockingEfficiency = "pass_blocking_efficiency"
)

// TeamCount bounds the rank range (1..32).
const TeamCount = 32

// TeamRanking is one team's offensive line ranking.
type TeamRanking struct {
	Rank        *int               `json:"rank,omitempty"`
	Team        string             `json:"team"`
	Description string             `json:"description"`
	KeyDetails  map[string]float64 `json:"key_details,omitempty"`
}

// RankValue returns the rank when present.
func (r TeamRanking) RankValue() (float64, bool) {
	if r.Rank == nil {
		return 0, false
	}
	return float64(*r.Rank), true
}

// Detail returns the named key-detail metric when present.
func (r TeamRanking) Detail(name string) (float64, bool) {
	v, ok := r.KeyDetails[name]
	return v, ok
}

// DetailKeys lists the known key-detail metrics in display order.
func DetailKeys() []string {
	return []string{
		KeyOverallGrade,
		KeyPassBlockingGrade,
		KeyRunBlockingGrade,
		KeyPositionRank,
		KeyPressuresAllowed,
		KeySacksAllowed,
		KeyPassBlockingEfficiency,
	}
}
