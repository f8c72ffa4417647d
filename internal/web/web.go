// Package web renders the reader's HTML pages and the JSON endpoints used
// by its client script.
package web

import (
	"context"
	"html/template"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/mushaf/internal/explain"
	"github.com/ziadkadry99/mushaf/internal/quran"
)

// Source is the Quran content the site renders.
type Source interface {
	ListSurahs(ctx context.Context) ([]quran.Surah, error)
	GetSurah(ctx context.Context, n int) (*quran.SurahDetail, error)
	GetEdition(ctx context.Context, n int, edition string) (*quran.SurahDetail, error)
}

// Options controls editions and audio.
type Options struct {
	TranslationEdition string
	AudioBaseURL       string
	AudioBitrate       int
	AudioEdition       string
}

// Site serves the reader pages.
type Site struct {
	source    Source
	explainer *explain.Explainer
	opts      Options
	pages     *template.Template
}

// New creates a Site. explainer may be nil, which disables explanations.
func New(source Source, explainer *explain.Explainer, opts Options) *Site {
	return &Site{
		source:    source,
		explainer: explainer,
		opts:      opts,
		pages:     template.Must(template.New("pages").Parse(pageTemplates)),
	}
}

// RegisterRoutes mounts the pages, JSON API and static assets on r.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Get("/", s.handleHome)
	r.Get("/surah/{surahNumber}", s.handleSurah)

	r.Route("/api", func(r chi.Router) {
		r.Get("/surahs", s.handleListSurahs)
		r.Get("/surah/{surahNumber}/translation", s.handleTranslation)
		r.Post("/explain", s.handleExplain)
	})

	r.Get("/script.js", serveStatic("script.js"))
	r.Get("/styles.css", serveStatic("styles.css"))
}
