// Package qurantest provides an in-process fake of the alquran.cloud API for tests.
package qurantest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/ziadkadry99/mushaf/internal/quran"
)

// known surahs carry real metadata; every other number gets generated values.
var known = map[int]quran.Surah{
	1:   {Number: 1, Name: "سُورَةُ ٱلْفَاتِحَةِ", EnglishName: "Al-Faatiha", EnglishNameTranslation: "The Opening", NumberOfAyahs: 7, RevelationType: "Meccan"},
	2:   {Number: 2, Name: "سُورَةُ البَقَرَةِ", EnglishName: "Al-Baqara", EnglishNameTranslation: "The Cow", NumberOfAyahs: 286, RevelationType: "Medinan"},
	9:   {Number: 9, Name: "سُورَةُ التَّوۡبَةِ", EnglishName: "At-Tawba", EnglishNameTranslation: "The Repentance", NumberOfAyahs: 129, RevelationType: "Medinan"},
	36:  {Number: 36, Name: "سُورَةُ يسٓ", EnglishName: "Yaseen", EnglishNameTranslation: "Yaseen", NumberOfAyahs: 83, RevelationType: "Meccan"},
	112: {Number: 112, Name: "سُورَةُ الإِخۡلَاصِ", EnglishName: "Al-Ikhlaas", EnglishNameTranslation: "Sincerity", NumberOfAyahs: 4, RevelationType: "Meccan"},
	114: {Number: 114, Name: "سُورَةُ النَّاسِ", EnglishName: "An-Naas", EnglishNameTranslation: "Mankind", NumberOfAyahs: 6, RevelationType: "Meccan"},
}

// Surah returns the fixture metadata for surah n.
func Surah(n int) quran.Surah {
	if s, ok := known[n]; ok {
		return s
	}
	return quran.Surah{
		Number:                 n,
		Name:                   fmt.Sprintf("سُورَةُ %d", n),
		EnglishName:            fmt.Sprintf("Surah-%d", n),
		EnglishNameTranslation: fmt.Sprintf("Chapter %d", n),
		NumberOfAyahs:          5,
		RevelationType:         "Meccan",
	}
}

// Surahs returns fixture metadata for all 114 surahs in order.
func Surahs() []quran.Surah {
	out := make([]quran.Surah, 0, quran.SurahCount)
	for n := 1; n <= quran.SurahCount; n++ {
		out = append(out, Surah(n))
	}
	return out
}

// AyahText is the fixture text of ayah i of surah n in the given edition
// ("" for the default Arabic text).
func AyahText(n, i int, edition string) string {
	if edition == "" {
		return fmt.Sprintf("نص الآية %d:%d", n, i)
	}
	return fmt.Sprintf("%s %d:%d", edition, n, i)
}

// Server is a fake content API. Its base URL for quran.NewClient is BaseURL().
type Server struct {
	*httptest.Server

	mu      sync.Mutex
	hits    map[string]int
	failing bool
}

// NewServer starts a fake API that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{hits: make(map[string]int)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// BaseURL returns the API root to hand to quran.NewClient.
func (s *Server) BaseURL() string { return s.URL + "/v1" }

// Hits returns how many requests were made for path (e.g. "/v1/surah/2").
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// TotalHits returns the number of requests served.
func (s *Server) TotalHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.hits {
		total += n
	}
	return total
}

// SetFailing makes every subsequent request answer 500.
func (s *Server) SetFailing(failing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = failing
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.hits[r.URL.Path]++
	failing := s.failing
	s.mu.Unlock()

	if failing {
		writeEnvelope(w, http.StatusInternalServerError, "INTERNAL SERVER ERROR", "upstream exploded")
		return
	}

	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1"), "/"), "/")
	if len(parts) == 0 || parts[0] != "surah" {
		writeEnvelope(w, http.StatusNotFound, "NOT FOUND", "Not found")
		return
	}

	switch len(parts) {
	case 1:
		writeEnvelope(w, http.StatusOK, "OK", Surahs())
	case 2, 3:
		n, err := strconv.Atoi(parts[1])
		if err != nil || !quran.ValidSurahNumber(n) {
			writeEnvelope(w, http.StatusNotFound, "NOT FOUND", "Surah not found")
			return
		}
		edition := ""
		if len(parts) == 3 {
			edition = parts[2]
		}
		writeEnvelope(w, http.StatusOK, "OK", detail(n, edition))
	default:
		writeEnvelope(w, http.StatusNotFound, "NOT FOUND", "Not found")
	}
}

func detail(n int, edition string) quran.SurahDetail {
	s := Surah(n)
	d := quran.SurahDetail{Surah: s}
	for i := 1; i <= s.NumberOfAyahs; i++ {
		d.Ayahs = append(d.Ayahs, quran.Ayah{
			Number:        n*1000 + i,
			NumberInSurah: i,
			Text:          AyahText(n, i, edition),
			Juz:           1,
			Page:          1,
		})
	}
	if edition != "" {
		d.Edition = &quran.Edition{Identifier: edition, Language: "ar", Format: "text", Type: "tafsir", Direction: "rtl"}
	}
	return d
}

func writeEnvelope(w http.ResponseWriter, code int, status string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{
		"code":   code,
		"status": status,
		"data":   data,
	})
}
