// Package search filters surah listings by name.
package search

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/ziadkadry99/mushaf/internal/quran"
)

// Matches reports whether query is a case-insensitive substring of the
// surah's Arabic name or its English name. An empty query matches everything.
func Matches(s quran.Surah, query string) bool {
	if query == "" {
		return true
	}
	fold := cases.Fold()
	q := fold.String(query)
	return strings.Contains(fold.String(s.Name), q) ||
		strings.Contains(fold.String(s.EnglishName), q)
}

// Filter returns the surahs whose names contain query, preserving order.
// The query is used as given; surrounding whitespace is significant.
func Filter(surahs []quran.Surah, query string) []quran.Surah {
	if query == "" {
		return surahs
	}
	out := make([]quran.Surah, 0, len(surahs))
	for _, s := range surahs {
		if Matches(s, query) {
			out = append(out, s)
		}
	}
	return out
}
