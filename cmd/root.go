package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mushaf/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mushaf",
	Short: "A Quran reading website with translations, recitation and verse explanations",
	Long: `Mushaf serves a Quran reader backed by the alquran.cloud API: a searchable
surah index, per-surah pages with translation and recitation toggles, and
optional AI-generated explanations of individual ayahs. The same content is
available from the command line and to AI agents via MCP.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".mushaf.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
