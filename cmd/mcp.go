package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/mushaf/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing surah listing, surah text and ayah explanation tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, closeCache, err := newCache(context.Background(), cfg)
		if err != nil {
			return err
		}
		defer closeCache()

		explainer, closeExplainer, err := setupExplainer(cfg)
		if err != nil {
			return err
		}
		defer closeExplainer()

		mcpserver.Version = Version
		srv := mcpserver.NewServer(newQuranClient(cfg, store), explainer, cfg.TranslationEdition)

		// Stdout carries the protocol; everything else goes to stderr.
		fmt.Fprintln(os.Stderr, "mushaf MCP server starting on stdio")
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
