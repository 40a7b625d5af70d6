package template

import (
	"slices"
	"sort"
	"strings"
)

// Filter selects filenames by parsed user, parsed skill and a free-text
// filename search. A nil Users or Skills slice means "all"; an empty
// non-nil slice selects nothing.
type Filter struct {
	Users  []string
	Skills []string
	Query  string
}

// Match reports whether info passes the filter. Query is a case-insensitive
// substring match on the filename.
func (f Filter) Match(info Info) bool {
	if f.Users != nil && !slices.Contains(f.Users, info.User) {
		return false
	}
	if f.Skills != nil && !slices.Contains(f.Skills, info.Skill) {
		return false
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		if !strings.Contains(strings.ToLower(info.Filename), strings.ToLower(q)) {
			return false
		}
	}
	return true
}

// Apply parses each filename and keeps those matching the filter, preserving
// input order.
func (f Filter) Apply(filenames []string) []Info {
	var out []Info
	for _, name := range filenames {
		info := ParseFilename(name)
		if f.Match(info) {
			out = append(out, info)
		}
	}
	return out
}

// Facets are the distinct users and skills across a set of filenames,
// sorted, used to populate the multi-select filters.
type Facets struct {
	Users  []string `json:"users"`
	Skills []string `json:"skills"`
}

// FacetsOf collects the facets of filenames.
func FacetsOf(filenames []string) Facets {
	users := make(map[string]struct{})
	skills := make(map[string]struct{})
	for _, name := range filenames {
		info := ParseFilename(name)
		users[info.User] = struct{}{}
		skills[info.Skill] = struct{}{}
	}
	return Facets{Users: sortedKeys(users), Skills: sortedKeys(skills)}
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
