// Package explain produces short Arabic explanations of individual ayahs
// using a generative-text provider and keeps them for reuse.
package explain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/ziadkadry99/mushaf/internal/llm"
)

// GenerateTimeout bounds one shared provider call. The call outlives the
// caller that started it, so it carries its own deadline.
const GenerateTimeout = 2 * time.Minute

const promptTemplate = "Give a concise explanation of the following Quranic verse in Arabic:\n\n%s\n\n"

// Prompt builds the provider prompt for a verse's text.
func Prompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}

// Result is an explanation ready to display.
type Result struct {
	Surah        int
	Ayah         int
	Markdown     string
	HTML         string
	Cached       bool
	InputTokens  int
	OutputTokens int
}

// Explainer answers explanation requests from the store or the provider.
type Explainer struct {
	provider llm.Provider
	store    *Store
	model    string
	group    singleflight.Group
}

// New creates an Explainer. store may be nil to disable persistence.
// A nil provider yields an Explainer that always returns ErrDisabled.
func New(provider llm.Provider, store *Store, model string) *Explainer {
	return &Explainer{provider: provider, store: store, model: model}
}

// Enabled reports whether explanations can be generated.
func (e *Explainer) Enabled() bool {
	return e != nil && e.provider != nil
}

// Model returns the model name explanations are stored under.
func (e *Explainer) Model() string {
	if e.model != "" {
		return e.model
	}
	if e.provider != nil {
		return e.provider.Name()
	}
	return ""
}

// Explain returns the explanation of ayah number ayah of surah, whose text
// is text. A stored explanation is reused; otherwise the provider is asked
// and its answer stored. Concurrent calls for the same verse share one
// provider request.
func (e *Explainer) Explain(ctx context.Context, surah, ayah int, text string) (*Result, error) {
	if !e.Enabled() {
		return nil, ErrDisabled
	}

	if e.store != nil {
		stored, err := e.store.Get(ctx, surah, ayah, e.Model())
		if err != nil {
			log.Warn().Err(err).Int("surah", surah).Int("ayah", ayah).Msg("explain: store lookup failed")
		} else if stored != nil {
			return e.result(stored, true)
		}
	}

	key := fmt.Sprintf("%d:%d", surah, ayah)
	ch := e.group.DoChan(key, func() (any, error) {
		genCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), GenerateTimeout)
		defer cancel()
		return e.generate(genCtx, surah, ayah, text)
	})

	// Each caller stops waiting on its own cancellation; the shared call
	// keeps running for the others and still stores its answer.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return e.result(r.Val.(*Explanation), false)
	}
}

// Stored returns the explanations already kept for surah under the
// explainer's model, in ayah order. Without a store it returns nil.
func (e *Explainer) Stored(ctx context.Context, surah int) ([]Explanation, error) {
	if e == nil || e.store == nil {
		return nil, nil
	}
	return e.store.ListBySurah(ctx, surah, e.Model())
}

// StoredCount returns how many explanations the store holds across all models.
func (e *Explainer) StoredCount(ctx context.Context) (int, error) {
	if e == nil || e.store == nil {
		return 0, nil
	}
	return e.store.Count(ctx)
}

func (e *Explainer) generate(ctx context.Context, surah, ayah int, text string) (*Explanation, error) {
	req := llm.UserPrompt(Prompt(text))
	req.Model = e.model

	resp, err := e.provider.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("explaining %d:%d with %s: %w", surah, ayah, e.provider.Name(), err)
	}
	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return nil, fmt.Errorf("explaining %d:%d: %w", surah, ayah, ErrEmptyExplanation)
	}

	exp := &Explanation{
		Surah:        surah,
		Ayah:         ayah,
		Model:        e.Model(),
		VerseText:    text,
		Content:      content,
		InputTokens:  resp.InputTokens,
		OutputTokens: resp.OutputTokens,
	}
	if e.store != nil {
		saved, err := e.store.Save(ctx, *exp)
		if err != nil {
			log.Warn().Err(err).Int("surah", surah).Int("ayah", ayah).Msg("explain: store write failed")
		} else {
			exp = saved
		}
	}
	log.Debug().Int("surah", surah).Int("ayah", ayah).
		Int("input_tokens", resp.InputTokens).Int("output_tokens", resp.OutputTokens).
		Msg("explain: generated")
	return exp, nil
}

func (e *Explainer) result(exp *Explanation, cached bool) (*Result, error) {
	html, err := Render(exp.Content)
	if err != nil {
		return nil, err
	}
	return &Result{
		Surah:        exp.Surah,
		Ayah:         exp.Ayah,
		Markdown:     exp.Content,
		HTML:         html,
		Cached:       cached,
		InputTokens:  exp.InputTokens,
		OutputTokens: exp.OutputTokens,
	}, nil
}
