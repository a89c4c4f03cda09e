package injuries

// Injury is a single player entry on a team's injury report.
type Injury struct {
	Player          string `json:"player"`
	Position        string `json:"position"`
	Injury          string `json:"injury"`
	Status          string `json:"status"`
	EstimatedReturn string `json:"estimated_return"`
}

// TeamInjuries groups the injury report for one team.
type TeamInjuries struct {
	Team     string   `json:"team"`
	Injuries []Injury `json:"injuries"`
}

// ReportEntry flattens an Injury with its team for per-player queries.
type ReportEntry struct {
	Team string `json:"team"`
	Injury
}

// Flatten expands team reports into one entry per injured player, preserving order.
func Flatten(reports []TeamInjuries) []ReportEntry {
	out := make([]ReportEntry, 0, len(reports))
	for _, report := range reports {
		for _, injury := range report.Injuries {
			out = append(out, ReportEntry{Team: report.Team, Injury: injury})
		}
	}
	return out
}
