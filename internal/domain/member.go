package domain

import (
	"path/filepath"
	"strings"
)

// MemberFromFilename extracts a contributor name from a data file name.
// Recognized grammars, checked against the base name with the extension
// stripped:
//
//	weather_data_<Name>        →  Name
//	weather_<name>_<timestamp> →  name (trailing all-digit segments are
//	                               treated as timestamp parts and dropped)
//
// Underscores in the name segment become spaces and each word is
// title-cased, so "weather_eric_smith_20240426_153000.csv" yields
// "Eric Smith". Returns false when no grammar matches or the name segment
// is empty.
func MemberFromFilename(name string) (string, bool) {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	parts := strings.Split(base, "_")
	if len(parts) < 2 || !strings.EqualFold(parts[0], "weather") {
		return "", false
	}

	rest := parts[1:]
	if strings.EqualFold(rest[0], "data") {
		rest = rest[1:]
	}
	for len(rest) > 0 && isDigits(rest[len(rest)-1]) {
		rest = rest[:len(rest)-1]
	}
	if len(rest) == 0 {
		return "", false
	}

	words := make([]string, 0, len(rest))
	for _, w := range rest {
		if w == "" {
			continue
		}
		words = append(words, TitleWord(w))
	}
	if len(words) == 0 {
		return "", false
	}
	return strings.Join(words, " "), true
}

// MemberFileSlug is the inverse encoding used when naming a member's data
// file: spaces become underscores and the name is lowercased, matching the
// weather_<name>_<timestamp>.csv grammar.
func MemberFileSlug(member string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(member), " ", "_"))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
