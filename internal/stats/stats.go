// Package stats derives count and min/max/avg summaries over record collections.
package stats

import "strings"

// UnknownValue labels records whose category value is missing.
const UnknownValue = "Unknown"

// Category groups records by a string attribute.
type Category[T any] struct {
	Name  string
	Value func(T) string
}

// Metric extracts an optional numeric attribute.
type Metric[T any] struct {
	Name  string
	Value func(T) (float64, bool)
}

// MetricSummary describes one numeric attribute. Min, Max and Avg are nil
// when no record carries the attribute.
type MetricSummary struct {
	Count int      `json:"count"`
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
	Avg   *float64 `json:"avg"`
}

// Summary is the aggregate view of a collection. Loaded is false for an
// empty collection, which callers report as "no data loaded" rather than as
// zeroed statistics.
type Summary struct {
	Loaded  bool                      `json:"-"`
	Total   int                       `json:"total"`
	Counts  map[string]map[string]int `json:"counts"`
	Metrics map[string]MetricSummary  `json:"metrics"`
}

// Aggregate counts items per category value and summarizes each metric.
func Aggregate[T any](items []T, categories []Category[T], metrics []Metric[T]) Summary {
	if len(items) == 0 {
		return Summary{}
	}

	summary := Summary{
		Loaded:  true,
		Total:   len(items),
		Counts:  make(map[string]map[string]int, len(categories)),
		Metrics: make(map[string]MetricSummary, len(metrics)),
	}
	for _, c := range categories {
		counts := make(map[string]int)
		for _, item := range items {
			v := c.Value(item)
			if strings.TrimSpace(v) == "" {
				v = UnknownValue
			}
			counts[v]++
		}
		summary.Counts[c.Name] = counts
	}
	for _, m := range metrics {
		summary.Metrics[m.Name] = summarize(items, m.Value)
	}
	return summary
}

// Zero returns a loaded summary with empty counts for every category and
// metric. Use it when the source loaded but held nothing to count.
func Zero[T any](categories []Category[T], metrics []Metric[T]) Summary {
	summary := Summary{
		Loaded:  true,
		Counts:  make(map[string]map[string]int, len(categories)),
		Metrics: make(map[string]MetricSummary, len(metrics)),
	}
	for _, c := range categories {
		summary.Counts[c.Name] = map[string]int{}
	}
	for _, m := range metrics {
		summary.Metrics[m.Name] = MetricSummary{}
	}
	return summary
}

func summarize[T any](items []T, value func(T) (float64, bool)) MetricSummary {
	var (
		out           MetricSummary
		min, max, sum float64
	)
	for _, item := range items {
		v, ok := value(item)
		if !ok {
			continue
		}
		if out.Count == 0 || v < min {
			min = v
		}
		if out.Count == 0 || v > max {
			max = v
		}
		sum += v
		out.Count++
	}
	if out.Count == 0 {
		return out
	}
	avg := sum / float64(out.Count)
	out.Min, out.Max, out.Avg = &min, &max, &avg
	return out
}
