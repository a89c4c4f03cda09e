// Package query provides the filter, range and lookup helpers shared by every
// record collection the service serves. Functions never mutate their input.
package query

import (
	"sort"
	"strings"
)

// MissingRank stands in for an absent rank so the record sorts after, and
// never falls inside, any bounded rank range.
const MissingRank = 999.0

// Field extracts a string attribute from a record.
type Field[T any] func(T) string

// Rank extracts an optional numeric rank from a record.
type Rank[T any] func(T) (float64, bool)

// FilterBy returns the records whose field equals value, ignoring case.
// The result is never nil.
func FilterBy[T any](items []T, field Field[T], value string) []T {
	out := make([]T, 0)
	for _, item := range items {
		if strings.EqualFold(field(item), value) {
			out = append(out, item)
		}
	}
	return out
}

// TopN returns the first n records in their existing order.
func TopN[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// ByRange returns records whose rank lies in [min, max]. Missing ranks are
// read as MissingRank.
func ByRange[T any](items []T, rank Rank[T], min, max float64) []T {
	out := make([]T, 0)
	for _, item := range items {
		v := rankOrMissing(rank, item)
		if v >= min && v <= max {
			out = append(out, item)
		}
	}
	return out
}

// FindBy returns the first record whose field equals value, ignoring case.
func FindBy[T any](items []T, field Field[T], value string) (T, bool) {
	for _, item := range items {
		if strings.EqualFold(field(item), value) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// SortBy returns a copy ordered by ascending rank. Ties keep their input
// order and missing ranks sort last.
func SortBy[T any](items []T, rank Rank[T]) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return rankOrMissing(rank, out[i]) < rankOrMissing(rank, out[j])
	})
	return out
}

func rankOrMissing[T any](rank Rank[T], item T) float64 {
	if v, ok := rank(item); ok {
		return v
	}
	return MissingRank
}
