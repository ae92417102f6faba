package miet

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Russian)

// NormalizeGroupName trims and upper-cases a group name typed by a user,
// e.g. " ивт-13 " -> "ИВТ-13"
func NormalizeGroupName(name string) string {
	return upper.String(strings.TrimSpace(name))
}

// FindGroup looks up a user supplied name in the fetched group list
func FindGroup(groups []string, name string) (string, bool) {
	want := NormalizeGroupName(name)
	if want == "" {
		return "", false
	}
	for _, g := range groups {
		if NormalizeGroupName(g) == want {
			return g, true
		}
	}
	return "", false
}

// FilterGroups returns the groups whose name contains the query, ignoring case
func FilterGroups(groups []string, query string) []string {
	q := NormalizeGroupName(query)
	if q == "" {
		return groups
	}
	var matches []string
	for _, g := range groups {
		if strings.Contains(NormalizeGroupName(g), q) {
			matches = append(matches, g)
		}
	}
	return matches
}
