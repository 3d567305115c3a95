package occupations

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

// SearchUnits finds unit groups whose title contains the term under
// case-insensitive, diacritic-insensitive folding, or whose code contains
// it literally. An empty term returns every unit group.
func SearchUnits(idx *Index, term string) []UnitGroup {
	term = strings.TrimSpace(term)
	if term == "" {
		return idx.Units()
	}

	matcher := search.New(language.English, search.IgnoreCase, search.IgnoreDiacritics)
	pattern := matcher.CompileString(term)

	out := []UnitGroup{}
	for _, g := range idx.Units() {
		if start, _ := pattern.IndexString(g.Title); start >= 0 {
			out = append(out, g)
			continue
		}
		if strings.Contains(g.Code, term) {
			out = append(out, g)
		}
	}
	return out
}
