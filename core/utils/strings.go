package utils

import "strings"

// SplitList splits a separator-delimited list and drops empty entries.
// Entries are not trimmed: a blank is a meaningful plan character.
func SplitList(s, sep string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinRunes renders runes as a separator-delimited list, the inverse of SplitList
// for single-character entries.
func JoinRunes(runes []rune, sep string) string {
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, sep)
}
