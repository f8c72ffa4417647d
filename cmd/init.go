package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mushaf/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize mushaf configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the reader (port, editions, explanation provider, cache) and writes a .mushaf.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
