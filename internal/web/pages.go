package web

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/ziadkadry99/mushaf/internal/quran"
	"github.com/ziadkadry99/mushaf/internal/reader"
	"github.com/ziadkadry99/mushaf/internal/search"
)

const (
	msgHomeError  = "Error loading surah list."
	msgSurahError = "Surah not found or an error occurred."
)

type homePage struct {
	Title  string
	Query  string
	Surahs []quran.Surah
}

// toggle is one toolbar link: the control as it reads now and the
// URL of the state it switches to.
type toggle struct {
	reader.Control
	Href string
}

type ayahView struct {
	quran.Ayah
	Translation string
}

type surahPage struct {
	Title         string
	Query         string
	Surah         quran.Surah
	Ayahs         []ayahView
	ShowBismillah bool
	Bismillah     string
	State         reader.State
	FontClass     string
	AudioURL      string
	Translation   toggle
	// TranslationLoaded is set when the inline translation text was rendered.
	TranslationLoaded bool
	Audio             toggle
	Font              toggle
	ExplainEnabled    bool
}

func (s *Site) handleHome(w http.ResponseWriter, r *http.Request) {
	surahs, err := s.source.ListSurahs(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("loading surah list")
		http.Error(w, msgHomeError, http.StatusInternalServerError)
		return
	}

	query := r.URL.Query().Get("q")
	s.render(w, "home", homePage{
		Title:  "القرآن الكريم",
		Query:  query,
		Surahs: search.Filter(surahs, query),
	})
}

func (s *Site) handleSurah(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "surahNumber")
	n, err := quran.ParseSurahNumber(raw)
	if err != nil {
		http.Error(w, msgSurahError, http.StatusNotFound)
		return
	}

	ctx := r.Context()
	detail, err := s.source.GetSurah(ctx, n)
	if err != nil {
		log.Error().Err(err).Int("surah", n).Msg("loading surah")
		http.Error(w, msgSurahError, http.StatusNotFound)
		return
	}

	state := reader.ParseState(r.URL.Query())

	var translations map[int]string
	if state.Translation {
		tr, err := s.source.GetEdition(ctx, n, s.opts.TranslationEdition)
		if err != nil {
			// The page still renders; the script can retry on toggle.
			log.Warn().Err(err).Int("surah", n).Str("edition", s.opts.TranslationEdition).Msg("loading translation")
		} else {
			translations = quran.TranslationsByAyah(tr)
		}
	}

	ayahs := make([]ayahView, 0, len(detail.Ayahs))
	for _, a := range detail.Ayahs {
		ayahs = append(ayahs, ayahView{Ayah: a, Translation: translations[a.NumberInSurah]})
	}

	s.render(w, "surah", surahPage{
		Title:             detail.Name + " - القرآن الكريم",
		Surah:             detail.Surah,
		Ayahs:             ayahs,
		ShowBismillah:     quran.ShowsBismillah(n),
		Bismillah:         quran.Bismillah,
		State:             state,
		FontClass:         state.CurrentFont().Class(),
		AudioURL:          quran.AudioURL(s.opts.AudioBaseURL, s.opts.AudioBitrate, s.opts.AudioEdition, n),
		Translation:       toggle{Control: state.TranslationControl(), Href: surahHref(n, state.ToggleTranslation())},
		TranslationLoaded: translations != nil,
		Audio:             toggle{Control: state.AudioControl(), Href: surahHref(n, state.ToggleAudio())},
		Font:              toggle{Control: state.FontControl(), Href: surahHref(n, state.ToggleFont())},
		ExplainEnabled:    s.explainer.Enabled(),
	})
}

func surahHref(n int, state reader.State) string {
	href := "/surah/" + strconv.Itoa(n)
	if q := state.Query(); q != "" {
		href += "?" + q
	}
	return href
}

// render executes a page into a buffer so template failures become a clean 500.
func (s *Site) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("rendering page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
