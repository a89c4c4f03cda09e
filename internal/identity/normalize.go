// Package identity derives the join key used to match the same player across sources.
package identity

import "strings"

// Suffixes stripped from names, applied in order so " iii" is removed before " ii".
var suffixes = []string{" iii", " ii", " jr.", " sr."}

var apostrophes = strings.NewReplacer("'", "", "’", "", "‘", "")

// Normalize returns the identity key for a display name. Empty or
// whitespace-only names yield "" which must never be used as a join key.
func Normalize(name string) string {
	key := asciiLower(strings.TrimSpace(name))
	for _, suffix := range suffixes {
		key = strings.ReplaceAll(key, suffix, "")
	}
	return apostrophes.Replace(key)
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
