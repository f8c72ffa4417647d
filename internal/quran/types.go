package quran

// Surah is one chapter of the Quran as listed by the content API.
type Surah struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
	RevelationType         string `json:"revelationType"`
}

// Ayah is a single verse. Number is its position in the whole Quran,
// NumberInSurah its position within the surah.
type Ayah struct {
	Number        int    `json:"number"`
	NumberInSurah int    `json:"numberInSurah"`
	Text          string `json:"text"`
	Juz           int    `json:"juz"`
	Page          int    `json:"page"`
}

// Edition describes the text or translation an ayah list was taken from.
type Edition struct {
	Identifier  string `json:"identifier"`
	Language    string `json:"language"`
	Name        string `json:"name"`
	EnglishName string `json:"englishName"`
	Format      string `json:"format"`
	Type        string `json:"type"`
	Direction   string `json:"direction"`
}

// SurahDetail is a surah together with all of its ayahs.
type SurahDetail struct {
	Surah
	Ayahs   []Ayah   `json:"ayahs"`
	Edition *Edition `json:"edition,omitempty"`
}

// envelope is the wrapper every content API response uses.
type envelope[T any] struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   T      `json:"data"`
}

// TranslationsByAyah indexes a translated surah's text by NumberInSurah.
func TranslationsByAyah(translation *SurahDetail) map[int]string {
	if translation == nil {
		return nil
	}
	out := make(map[int]string, len(translation.Ayahs))
	for _, a := range translation.Ayahs {
		out[a.NumberInSurah] = a.Text
	}
	return out
}
