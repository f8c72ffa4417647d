package explain

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/mushaf/internal/db"
	"github.com/ziadkadry99/mushaf/internal/llm/llmtest"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	d, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return NewStore(d)
}

func TestPrompt(t *testing.T) {
	got := Prompt("قُلْ هُوَ ٱللَّهُ أَحَدٌ")
	assert.Equal(t, "Give a concise explanation of the following Quranic verse in Arabic:\n\nقُلْ هُوَ ٱللَّهُ أَحَدٌ\n\n", got)
}

func TestExplainCallsProviderOnceThenUsesStore(t *testing.T) {
	provider := llmtest.New("**التوحيد** الخالص")
	e := New(provider, setupStore(t), "gemini-2.5-flash")
	ctx := context.Background()

	first, err := e.Explain(ctx, 112, 1, "قُلْ هُوَ ٱللَّهُ أَحَدٌ")
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, "**التوحيد** الخالص", first.Markdown)
	assert.Contains(t, first.HTML, "<strong>التوحيد</strong>")
	assert.Equal(t, 1, provider.CallCount())
	assert.Equal(t, Prompt("قُلْ هُوَ ٱللَّهُ أَحَدٌ"), provider.LastPrompt())
	assert.Equal(t, "gemini-2.5-flash", provider.Calls[0].Model)

	second, err := e.Explain(ctx, 112, 1, "قُلْ هُوَ ٱللَّهُ أَحَدٌ")
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.HTML, second.HTML)
	assert.Equal(t, 1, provider.CallCount())

	// A different ayah is a fresh request.
	_, err = e.Explain(ctx, 112, 2, "ٱللَّهُ ٱلصَّمَدُ")
	require.NoError(t, err)
	assert.Equal(t, 2, provider.CallCount())
}

func TestExplainSharedCallOutlivesCancelledCaller(t *testing.T) {
	provider := llmtest.New("شرح")
	provider.Started = make(chan struct{}, 1)
	provider.Release = make(chan struct{})
	e := New(provider, setupStore(t), "m")

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := e.Explain(firstCtx, 1, 1, "text")
		firstErr <- err
	}()
	<-provider.Started
	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	type outcome struct {
		res *Result
		err error
	}
	second := make(chan outcome, 1)
	go func() {
		res, err := e.Explain(context.Background(), 1, 1, "text")
		second <- outcome{res, err}
	}()
	close(provider.Release)

	got := <-second
	require.NoError(t, got.err)
	assert.Equal(t, "شرح", got.res.Markdown)
	assert.Equal(t, 1, provider.CallCount())
}

func TestExplainWithoutStoreAlwaysAsks(t *testing.T) {
	provider := llmtest.New("شرح")
	e := New(provider, nil, "")

	for i := 0; i < 2; i++ {
		res, err := e.Explain(context.Background(), 1, 1, "text")
		require.NoError(t, err)
		assert.False(t, res.Cached)
	}
	assert.Equal(t, 2, provider.CallCount())
	assert.Equal(t, "fake", e.Model())
}

func TestExplainDisabled(t *testing.T) {
	var nilExplainer *Explainer
	_, err := nilExplainer.Explain(context.Background(), 1, 1, "text")
	assert.ErrorIs(t, err, ErrDisabled)
	assert.False(t, nilExplainer.Enabled())

	_, err = New(nil, nil, "m").Explain(context.Background(), 1, 1, "text")
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestExplainEmptyResponse(t *testing.T) {
	provider := llmtest.New("   \n")
	store := setupStore(t)
	e := New(provider, store, "m")

	_, err := e.Explain(context.Background(), 2, 255, "text")
	assert.ErrorIs(t, err, ErrEmptyExplanation)

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestExplainProviderError(t *testing.T) {
	provider := llmtest.New("")
	provider.Err = errors.New("connection refused")
	e := New(provider, setupStore(t), "m")

	_, err := e.Explain(context.Background(), 2, 255, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.NotErrorIs(t, err, ErrEmptyExplanation)
}

func TestRenderEscapesRawHTML(t *testing.T) {
	html, err := Render("نص <script>alert(1)</script>\n\n<div onclick=\"x\">y</div>")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "onclick")
}

func TestRenderMarkdown(t *testing.T) {
	html, err := Render("# عنوان\n\n- أولا\n- ثانيا")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>عنوان</h1>")
	assert.Equal(t, 2, strings.Count(html, "<li>"))
}

func TestStoreSaveReplacesSameVerse(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, Explanation{Surah: 1, Ayah: 1, Model: "m", Content: "old"})
	require.NoError(t, err)
	_, err = store.Save(ctx, Explanation{Surah: 1, Ayah: 1, Model: "m", Content: "new"})
	require.NoError(t, err)
	_, err = store.Save(ctx, Explanation{Surah: 1, Ayah: 1, Model: "other", Content: "elsewhere"})
	require.NoError(t, err)

	got, err := store.Get(ctx, 1, 1, "m")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "new", got.Content)
	assert.NotEmpty(t, got.ID)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestStoreGetMissing(t *testing.T) {
	got, err := setupStore(t).Get(context.Background(), 9, 1, "m")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreListBySurah(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	for _, ayah := range []int{3, 1, 2} {
		_, err := store.Save(ctx, Explanation{Surah: 103, Ayah: ayah, Model: "m", Content: "c"})
		require.NoError(t, err)
	}

	list, err := store.ListBySurah(ctx, 103, "m")
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, e := range list {
		assert.Equal(t, i+1, e.Ayah)
	}
}

func TestExplainerStoredListsOwnModelOnly(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	_, err := store.Save(ctx, Explanation{Surah: 103, Ayah: 2, Model: "other", Content: "c"})
	require.NoError(t, err)

	e := New(llmtest.New("شرح"), store, "m")
	for _, ayah := range []int{3, 1} {
		_, err := e.Explain(ctx, 103, ayah, "text")
		require.NoError(t, err)
	}

	stored, err := e.Stored(ctx, 103)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, 1, stored[0].Ayah)
	assert.Equal(t, 3, stored[1].Ayah)

	total, err := e.StoredCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	noStore := New(llmtest.New("شرح"), nil, "m")
	stored, err = noStore.Stored(ctx, 103)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
