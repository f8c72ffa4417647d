package quran

import (
	"fmt"
	"strconv"
	"strings"
)

// SurahCount is the number of surahs in the Quran.
const SurahCount = 114

// Bismillah is the opening invocation shown above every surah except 1 and 9.
const Bismillah = "بِسْمِ ٱللَّهِ ٱلرَّحْمَٰنِ ٱلرَّحِيمِ"

// ValidSurahNumber reports whether n names an existing surah.
func ValidSurahNumber(n int) bool {
	return n >= 1 && n <= SurahCount
}

// ParseSurahNumber parses a path segment such as "2" into a surah number.
// Only plain decimal digits in 1..SurahCount are accepted.
func ParseSurahNumber(s string) (int, error) {
	if s == "" || len(s) > 3 || strings.TrimLeft(s, "0123456789") != "" {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidSurahNumber)
	}
	n, err := strconv.Atoi(s)
	if err != nil || !ValidSurahNumber(n) {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidSurahNumber)
	}
	return n, nil
}

// ShowsBismillah reports whether the opening invocation is rendered above surah n.
// Al-Fatiha carries it as its first ayah and At-Tawba has none.
func ShowsBismillah(n int) bool {
	return n != 1 && n != 9
}

// AudioURL builds the recitation URL for surah n on the audio CDN,
// e.g. https://cdn.islamic.network/quran/audio/128/ar.alafasy/2.mp3.
func AudioURL(base string, bitrate int, edition string, n int) string {
	return fmt.Sprintf("%s/%d/%s/%d.mp3", strings.TrimRight(base, "/"), bitrate, edition, n)
}
