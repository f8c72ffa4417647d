package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mushaf/internal/search"
)

var surahsCmd = &cobra.Command{
	Use:   "surahs [query]",
	Short: "List surahs, optionally filtered by name",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := context.Background()
		store, closeCache, err := newCache(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeCache()

		surahs, err := newQuranClient(cfg, store).ListSurahs(ctx)
		if err != nil {
			return err
		}

		var query string
		if len(args) == 1 {
			query = args[0]
		}
		matched := search.Filter(surahs, query)
		if len(matched) == 0 {
			fmt.Fprintf(os.Stderr, "No surah name contains %q.\n", query)
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tNAME\tENGLISH\tMEANING\tAYAHS\tREVELATION")
		fmt.Fprintln(w, strings.Repeat("-", 3)+"\t----\t-------\t-------\t-----\t----------")
		for _, s := range matched {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n",
				s.Number, s.Name, s.EnglishName, s.EnglishNameTranslation, s.NumberOfAyahs, s.RevelationType)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(surahsCmd)
}
