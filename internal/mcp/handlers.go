package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/mushaf/internal/explain"
	"github.com/ziadkadry99/mushaf/internal/quran"
	"github.com/ziadkadry99/mushaf/internal/search"
)

// handleListSurahs lists surahs, filtered by the optional query.
func (s *Server) handleListSurahs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	surahs, err := s.source.ListSurahs(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load surah list: %v", err)), nil
	}

	query := request.GetString("query", "")
	matched := search.Filter(surahs, query)
	if len(matched) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No surah name contains %q.", query)), nil
	}
	return mcp.NewToolResultText(formatSurahList(matched)), nil
}

// handleGetSurah returns the text of one surah.
func (s *Server) handleGetSurah(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := request.RequireInt("number")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: number"), nil
	}
	if !quran.ValidSurahNumber(n) {
		return mcp.NewToolResultError(fmt.Sprintf("surah %d does not exist (must be 1-%d)", n, quran.SurahCount)), nil
	}

	detail, err := s.source.GetSurah(ctx, n)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load surah %d: %v", n, err)), nil
	}

	var translations map[int]string
	if request.GetBool("translation", false) {
		tr, err := s.source.GetEdition(ctx, n, s.translationEdition)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to load translation for surah %d: %v", n, err)), nil
		}
		translations = quran.TranslationsByAyah(tr)
	}

	return mcp.NewToolResultText(formatSurah(detail, translations)), nil
}

// handleExplainAyah returns the explanation of one ayah.
func (s *Server) handleExplainAyah(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.explainer.Enabled() {
		return mcp.NewToolResultError("explanations are disabled; set explain.enabled in .mushaf.yml"), nil
	}
	surah, err := request.RequireInt("surah")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: surah"), nil
	}
	ayah, err := request.RequireInt("ayah")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: ayah"), nil
	}
	if !quran.ValidSurahNumber(surah) {
		return mcp.NewToolResultError(fmt.Sprintf("surah %d does not exist (must be 1-%d)", surah, quran.SurahCount)), nil
	}

	detail, err := s.source.GetSurah(ctx, surah)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load surah %d: %v", surah, err)), nil
	}
	var text string
	for _, a := range detail.Ayahs {
		if a.NumberInSurah == ayah {
			text = a.Text
			break
		}
	}
	if text == "" {
		return mcp.NewToolResultError(fmt.Sprintf("surah %d has no ayah %d (it has %d)", surah, ayah, len(detail.Ayahs))), nil
	}

	res, err := s.explainer.Explain(ctx, surah, ayah, text)
	if err != nil {
		if errors.Is(err, explain.ErrEmptyExplanation) {
			return mcp.NewToolResultError(explain.MessageUnavailable), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("explanation failed: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%d:%d %s\n\n%s", surah, ayah, text, res.Markdown)), nil
}

// formatSurahList renders one line per surah for agent consumption.
func formatSurahList(surahs []quran.Surah) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d surah(s):\n", len(surahs)))
	for _, s := range surahs {
		sb.WriteString(fmt.Sprintf("%d. %s (%s, %q) - %d ayahs, %s\n",
			s.Number, s.Name, s.EnglishName, s.EnglishNameTranslation, s.NumberOfAyahs, s.RevelationType))
	}
	return sb.String()
}

// formatSurah renders a surah's ayahs, each followed by its translation when present.
func formatSurah(d *quran.SurahDetail, translations map[int]string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Surah %d: %s (%s) - %d ayahs, %s\n",
		d.Number, d.Name, d.EnglishName, d.NumberOfAyahs, d.RevelationType))
	if quran.ShowsBismillah(d.Number) {
		sb.WriteString("\n" + quran.Bismillah + "\n")
	}
	for _, a := range d.Ayahs {
		sb.WriteString(fmt.Sprintf("\n[%d] %s\n", a.NumberInSurah, a.Text))
		if t, ok := translations[a.NumberInSurah]; ok {
			sb.WriteString("    " + t + "\n")
		}
	}
	return sb.String()
}
