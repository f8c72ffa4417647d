package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ziadkadry99/mushaf/internal/quran"
)

var fixture = []quran.Surah{
	{Number: 1, Name: "سُورَةُ ٱلْفَاتِحَةِ", EnglishName: "Al-Faatiha", EnglishNameTranslation: "The Opening"},
	{Number: 2, Name: "سُورَةُ البَقَرَةِ", EnglishName: "Al-Baqara", EnglishNameTranslation: "The Cow"},
	{Number: 36, Name: "سُورَةُ يسٓ", EnglishName: "Yaseen", EnglishNameTranslation: "Yaseen"},
	{Number: 114, Name: "سُورَةُ النَّاسِ", EnglishName: "An-Naas", EnglishNameTranslation: "Mankind"},
}

func numbers(surahs []quran.Surah) []int {
	out := make([]int, 0, len(surahs))
	for _, s := range surahs {
		out = append(out, s.Number)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"empty query returns all", "", []int{1, 2, 36, 114}},
		{"english substring", "baq", []int{2}},
		{"case insensitive", "AL-", []int{1, 2}},
		{"mixed case", "yAsEeN", []int{36}},
		{"arabic substring", "البَقَرَةِ", []int{2}},
		{"shared arabic prefix", "سُورَةُ", []int{1, 2, 36, 114}},
		{"no match", "xyz", []int{}},
		{"translation is not searched", "Cow", []int{}},
		{"whitespace is significant", " al", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, numbers(Filter(fixture, tt.query)))
		})
	}
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	in := append([]quran.Surah(nil), fixture...)
	got := Filter(in, "a")
	assert.Equal(t, []int{1, 2, 36, 114}, numbers(got))
	assert.Equal(t, fixture, in)
}

func TestMatchesAgreesWithFilter(t *testing.T) {
	for _, q := range []string{"", "al", "NAAS", "يس", "zzz"} {
		var want []int
		for _, s := range fixture {
			if Matches(s, q) {
				want = append(want, s.Number)
			}
		}
		got := numbers(Filter(fixture, q))
		if len(want) == 0 {
			assert.Empty(t, got, "query %q", q)
			continue
		}
		assert.Equal(t, want, got, "query %q", q)
	}
}
