package quran_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/mushaf/internal/cache"
	"github.com/ziadkadry99/mushaf/internal/quran"
	"github.com/ziadkadry99/mushaf/internal/quran/qurantest"
)

func TestListSurahs(t *testing.T) {
	api := qurantest.NewServer(t)
	client := quran.NewClient(api.BaseURL())

	surahs, err := client.ListSurahs(context.Background())
	require.NoError(t, err)
	require.Len(t, surahs, quran.SurahCount)

	assert.Equal(t, 1, surahs[0].Number)
	assert.Equal(t, "Al-Faatiha", surahs[0].EnglishName)
	assert.Equal(t, 114, surahs[113].Number)
}

func TestGetSurah(t *testing.T) {
	api := qurantest.NewServer(t)
	client := quran.NewClient(api.BaseURL())

	detail, err := client.GetSurah(context.Background(), 112)
	require.NoError(t, err)
	assert.Equal(t, "Al-Ikhlaas", detail.EnglishName)
	assert.Equal(t, "Meccan", detail.RevelationType)
	require.Len(t, detail.Ayahs, 4)
	assert.Equal(t, 1, detail.Ayahs[0].NumberInSurah)
	assert.Equal(t, qurantest.AyahText(112, 1, ""), detail.Ayahs[0].Text)
	assert.Nil(t, detail.Edition)
}

func TestGetSurahRejectsInvalidNumberWithoutCallingUpstream(t *testing.T) {
	api := qurantest.NewServer(t)
	client := quran.NewClient(api.BaseURL())

	for _, n := range []int{0, -1, 115, 1000} {
		_, err := client.GetSurah(context.Background(), n)
		assert.ErrorIs(t, err, quran.ErrNotFound, "surah %d", n)
		assert.ErrorIs(t, err, quran.ErrInvalidSurahNumber, "surah %d", n)
	}
	assert.Equal(t, 0, api.TotalHits())
}

func TestGetEdition(t *testing.T) {
	api := qurantest.NewServer(t)
	client := quran.NewClient(api.BaseURL())

	detail, err := client.GetEdition(context.Background(), 1, "ar.muhammadagourelifet")
	require.NoError(t, err)
	require.NotNil(t, detail.Edition)
	assert.Equal(t, "ar.muhammadagourelifet", detail.Edition.Identifier)
	assert.Equal(t, qurantest.AyahText(1, 3, "ar.muhammadagourelifet"), detail.Ayahs[2].Text)

	_, err = client.GetEdition(context.Background(), 1, "../secret")
	assert.ErrorIs(t, err, quran.ErrNotFound)
	_, err = client.GetEdition(context.Background(), 1, "")
	assert.ErrorIs(t, err, quran.ErrNotFound)
}

func TestUpstreamFailure(t *testing.T) {
	api := qurantest.NewServer(t)
	api.SetFailing(true)
	client := quran.NewClient(api.BaseURL())

	_, err := client.ListSurahs(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, quran.ErrUpstream)

	var apiErr *quran.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestUpstreamNotFoundStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":404,"status":"NOT FOUND","data":"Surah not found"}`, http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	_, err := quran.NewClient(srv.URL).GetSurah(context.Background(), 5)
	assert.ErrorIs(t, err, quran.ErrNotFound)
}

func TestEnvelopeCodeChecked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":400,"status":"BAD REQUEST","data":"nope"}`))
	}))
	t.Cleanup(srv.Close)

	_, err := quran.NewClient(srv.URL).ListSurahs(context.Background())
	assert.ErrorIs(t, err, quran.ErrUpstream)
}

func TestMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	t.Cleanup(srv.Close)

	_, err := quran.NewClient(srv.URL).ListSurahs(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, quran.ErrNotFound)
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := quran.NewClient(base, quran.WithTimeout(time.Second)).ListSurahs(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, quran.ErrNotFound)
}

func TestCachedResponsesSkipUpstream(t *testing.T) {
	api := qurantest.NewServer(t)
	store := cache.NewMemory()
	client := quran.NewClient(api.BaseURL(), quran.WithCache(store, time.Hour))
	ctx := context.Background()

	first, err := client.GetEdition(ctx, 2, "ar.muhammadagourelifet")
	require.NoError(t, err)
	second, err := client.GetEdition(ctx, 2, "ar.muhammadagourelifet")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, api.Hits("/v1/surah/2/ar.muhammadagourelifet"))

	// A different surah is a different key.
	_, err = client.GetEdition(ctx, 3, "ar.muhammadagourelifet")
	require.NoError(t, err)
	assert.Equal(t, 1, api.Hits("/v1/surah/3/ar.muhammadagourelifet"))
}

func TestFailuresAreNotCached(t *testing.T) {
	api := qurantest.NewServer(t)
	store := cache.NewMemory()
	client := quran.NewClient(api.BaseURL(), quran.WithCache(store, time.Hour))
	ctx := context.Background()

	api.SetFailing(true)
	_, err := client.ListSurahs(ctx)
	require.Error(t, err)
	assert.Equal(t, 0, store.Len())

	api.SetFailing(false)
	surahs, err := client.ListSurahs(ctx)
	require.NoError(t, err)
	assert.Len(t, surahs, quran.SurahCount)
}

func TestTranslationsByAyah(t *testing.T) {
	detail := &quran.SurahDetail{Ayahs: []quran.Ayah{
		{NumberInSurah: 1, Text: "one"},
		{NumberInSurah: 2, Text: "two"},
	}}
	got := quran.TranslationsByAyah(detail)
	assert.Equal(t, map[int]string{1: "one", 2: "two"}, got)
	assert.Nil(t, quran.TranslationsByAyah(nil))
}
