package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mushaf/internal/explain"
	"github.com/ziadkadry99/mushaf/internal/llm"
	"github.com/ziadkadry99/mushaf/internal/progress"
	"github.com/ziadkadry99/mushaf/internal/quran"
)

// estimatedOutputTokens is the assumed answer length per ayah for cost estimates.
const estimatedOutputTokens = 400

var explainDryRun bool

var explainCmd = &cobra.Command{
	Use:   "explain <surah> [ayah]",
	Short: "Generate explanations for one ayah or a whole surah",
	Long: `Generates and stores explanations. With an ayah number the explanation is
printed as Markdown. Without one every ayah of the surah is explained, which
pre-fills the store the web server reads from.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		surahNum, err := quran.ParseSurahNumber(args[0])
		if err != nil {
			return fmt.Errorf("invalid surah number %q (expected 1-%d)", args[0], quran.SurahCount)
		}
		ayahNum := 0
		if len(args) == 2 {
			ayahNum, err = strconv.Atoi(args[1])
			if err != nil || ayahNum < 1 {
				return fmt.Errorf("invalid ayah number %q", args[1])
			}
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !cfg.Explain.Enabled {
			return fmt.Errorf("explanations are disabled; set explain.enabled in %s", cfgFile)
		}

		ctx := context.Background()
		store, closeCache, err := newCache(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeCache()

		detail, err := newQuranClient(cfg, store).GetSurah(ctx, surahNum)
		if err != nil {
			return err
		}

		ayahs := detail.Ayahs
		if ayahNum > 0 {
			if ayahNum > len(ayahs) {
				return fmt.Errorf("surah %d has %d ayahs", surahNum, len(ayahs))
			}
			ayahs = ayahs[ayahNum-1 : ayahNum]
		}

		inputTokens := 0
		for _, a := range ayahs {
			inputTokens += llm.EstimateTokens(explain.Prompt(a.Text))
		}
		estimate := llm.EstimateCost(cfg.Explain.Model, inputTokens, estimatedOutputTokens*len(ayahs))
		fmt.Fprintf(os.Stderr, "Surah %d (%s): %d ayah(s), ~%d input tokens, estimated cost $%.4f\n",
			surahNum, detail.EnglishName, len(ayahs), inputTokens, estimate)
		if explainDryRun {
			return nil
		}

		provider, err := createLLMProviderFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating LLM provider: %w", err)
		}
		explainer, closeExplainer, err := openExplainer(cfg, provider)
		if err != nil {
			return err
		}
		defer closeExplainer()

		if ayahNum > 0 {
			res, err := explainer.Explain(ctx, surahNum, ayahNum, ayahs[0].Text)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Markdown)
			return nil
		}

		stored, err := explainer.Stored(ctx, surahNum)
		if err != nil {
			return err
		}
		done := make(map[int]bool, len(stored))
		for _, e := range stored {
			done[e.Ayah] = true
		}
		var pending []quran.Ayah
		for _, a := range ayahs {
			if !done[a.NumberInSurah] {
				pending = append(pending, a)
			}
		}
		cached := len(ayahs) - len(pending)
		if len(pending) == 0 {
			fmt.Fprintf(os.Stderr, "All %d ayahs of surah %d are already stored.\n", len(ayahs), surahNum)
			return nil
		}

		reporter := progress.NewReporter(fmt.Sprintf("Explaining surah %d", surahNum))
		reporter.Start(len(pending))

		var generated, failed, inTok, outTok int
		for i, a := range pending {
			reporter.Update(i, fmt.Sprintf("ayah %d/%d", a.NumberInSurah, len(ayahs)))
			res, err := explainer.Explain(ctx, surahNum, a.NumberInSurah, a.Text)
			switch {
			case errors.Is(err, explain.ErrEmptyExplanation):
				failed++
				continue
			case err != nil:
				reporter.Finish()
				return fmt.Errorf("ayah %d: %w", a.NumberInSurah, err)
			case res.Cached:
				cached++
			default:
				generated++
				inTok += res.InputTokens
				outTok += res.OutputTokens
			}
			reporter.Update(i+1, fmt.Sprintf("ayah %d/%d", a.NumberInSurah, len(ayahs)))
		}
		reporter.Finish()

		fmt.Fprintf(os.Stderr, "Done: %d generated, %d already stored, %d empty.\n", generated, cached, failed)
		if generated > 0 {
			fmt.Fprintf(os.Stderr, "Tokens: %d in / %d out, cost $%.4f\n",
				inTok, outTok, llm.EstimateCost(explainer.Model(), inTok, outTok))
		}
		if total, err := explainer.StoredCount(ctx); err == nil {
			fmt.Fprintf(os.Stderr, "The store now holds %d explanation(s).\n", total)
		}
		return nil
	},
}

func init() {
	explainCmd.Flags().BoolVar(&explainDryRun, "dry-run", false, "Only print the cost estimate")
	rootCmd.AddCommand(explainCmd)
}
