package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/ziadkadry99/mushaf/internal/explain"
	"github.com/ziadkadry99/mushaf/internal/quran"
	"github.com/ziadkadry99/mushaf/internal/search"
)

const maxExplainBody = 4 << 10

type translationItem struct {
	NumberInSurah int    `json:"numberInSurah"`
	Text          string `json:"text"`
}

type explainRequest struct {
	Surah int `json:"surah"`
	Ayah  int `json:"ayah"`
}

type explainResponse struct {
	Surah  int    `json:"surah"`
	Ayah   int    `json:"ayah"`
	HTML   string `json:"html"`
	Cached bool   `json:"cached"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Site) handleListSurahs(w http.ResponseWriter, r *http.Request) {
	surahs, err := s.source.ListSurahs(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("api: loading surah list")
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "failed to load surah list"})
		return
	}
	writeJSON(w, http.StatusOK, search.Filter(surahs, r.URL.Query().Get("q")))
}

func (s *Site) handleTranslation(w http.ResponseWriter, r *http.Request) {
	n, err := quran.ParseSurahNumber(chi.URLParam(r, "surahNumber"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "surah not found"})
		return
	}

	detail, err := s.source.GetEdition(r.Context(), n, s.opts.TranslationEdition)
	if err != nil {
		if errors.Is(err, quran.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "translation not found"})
			return
		}
		log.Error().Err(err).Int("surah", n).Str("edition", s.opts.TranslationEdition).Msg("api: loading translation")
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "failed to load translation"})
		return
	}

	items := make([]translationItem, 0, len(detail.Ayahs))
	for _, a := range detail.Ayahs {
		items = append(items, translationItem{NumberInSurah: a.NumberInSurah, Text: a.Text})
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Site) handleExplain(w http.ResponseWriter, r *http.Request) {
	if !s.explainer.Enabled() {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: explain.MessageUnavailable})
		return
	}

	var req explainRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxExplainBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if !quran.ValidSurahNumber(req.Surah) || req.Ayah < 1 {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "ayah not found"})
		return
	}

	ctx := r.Context()
	detail, err := s.source.GetSurah(ctx, req.Surah)
	if errors.Is(err, quran.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "ayah not found"})
		return
	}
	if err != nil {
		log.Error().Err(err).Int("surah", req.Surah).Msg("api: loading surah for explanation")
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: explain.MessageNetworkError})
		return
	}
	text, ok := ayahText(detail, req.Ayah)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "ayah not found"})
		return
	}

	res, err := s.explainer.Explain(ctx, req.Surah, req.Ayah, text)
	switch {
	case errors.Is(err, explain.ErrDisabled):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: explain.MessageUnavailable})
		return
	case errors.Is(err, explain.ErrEmptyExplanation):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: explain.MessageUnavailable})
		return
	case err != nil:
		log.Error().Err(err).Int("surah", req.Surah).Int("ayah", req.Ayah).Msg("api: explaining ayah")
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: explain.MessageNetworkError})
		return
	}

	writeJSON(w, http.StatusOK, explainResponse{
		Surah:  res.Surah,
		Ayah:   res.Ayah,
		HTML:   res.HTML,
		Cached: res.Cached,
	})
}

func ayahText(detail *quran.SurahDetail, n int) (string, bool) {
	for _, a := range detail.Ayahs {
		if a.NumberInSurah == n {
			return a.Text, true
		}
	}
	return "", false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
