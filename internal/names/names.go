// Package names canonicalizes spell names from the catalogue and the table
// so the two naming schemes meet on a common lookup key
package names

import (
	"regexp"
	"strings"
)

// tagSuffix matches the " (@Tag@)" marker the catalogue appends to
// templated spell names
var tagSuffix = regexp.MustCompile(` \(@\p{L}+@\)$`)

const (
	veryHardSuffix  = " (vh)"
	techLevelSuffix = "/tl"
)

// Key returns the catalogue lookup key for a spell name
func Key(name string) string {
	return tagSuffix.ReplaceAllString(strings.ToLower(name), "")
}

// Candidates returns the keys a table name may be stored under, in the
// order they should be tried. Variants are derived independently from the
// lowercased name with its " (VH)" and "/TL" markers removed; alias
// overrides for the exact raw name come last.
func Candidates(raw string, aliases AliasTable) []string {
	base := strings.ToLower(raw)
	base = strings.TrimSuffix(base, veryHardSuffix)
	base = strings.TrimSuffix(base, techLevelSuffix)

	variants := []string{
		base,
		strings.ReplaceAll(base, "-", " "),
		strings.ReplaceAll(base, "’", "'"),
		strings.ReplaceAll(base, "ä", "a"),
		strings.ReplaceAll(base, "sense", "@sense@"),
	}
	if alias, ok := aliases.Lookup(raw); ok {
		variants = append(variants, alias)
	}

	candidates := make([]string, 0, len(variants))
	seen := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		candidates = append(candidates, v)
	}
	return candidates
}

// Match is the outcome of resolving a table name
type Match struct {
	// Key is the first candidate present in the catalogue
	Key string

	// Others lists later candidates that were also present. The first
	// candidate still wins; these are reported as possible false positives.
	Others []string
}

// Resolve returns the first candidate for raw accepted by has. ok is false
// when no candidate is present.
func Resolve(raw string, aliases AliasTable, has func(key string) bool) (match Match, ok bool) {
	for _, candidate := range Candidates(raw, aliases) {
		if !has(candidate) {
			continue
		}
		if !ok {
			match.Key = candidate
			ok = true
			continue
		}
		match.Others = append(match.Others, candidate)
	}
	return match, ok
}
