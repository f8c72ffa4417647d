package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mushaf/internal/server"
	"github.com/ziadkadry99/mushaf/internal/web"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the Quran reader web server",
	Long:  `Starts the web server: the surah index at /, surah pages at /surah/{n}, and the JSON endpoints used by the page script.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = serverPort
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, closeCache, err := newCache(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeCache()

		explainer, closeExplainer, err := setupExplainer(cfg)
		if err != nil {
			return err
		}
		defer closeExplainer()

		srv := server.New(server.Config{
			Port:           cfg.Port,
			AllowAll:       cfg.CORSAllowAll,
			RequestTimeout: 2 * cfg.RequestTimeout,
			Version:        Version,
		})

		site := web.New(newQuranClient(cfg, store), explainer, web.Options{
			TranslationEdition: cfg.TranslationEdition,
			AudioBaseURL:       cfg.AudioBaseURL,
			AudioBitrate:       cfg.AudioBitrate,
			AudioEdition:       cfg.AudioEdition,
		})
		site.RegisterRoutes(srv.Router())

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "mushaf server %s starting on http://localhost:%d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Content API:  %s\n", cfg.APIBaseURL)
		fmt.Fprintf(os.Stderr, "  Cache:        %s (ttl %s)\n", store.Name(), cfg.Cache.TTL)
		if explainer.Enabled() {
			fmt.Fprintf(os.Stderr, "  Explanations: %s/%s\n", cfg.Explain.Provider, cfg.Explain.Model)
		} else {
			fmt.Fprintln(os.Stderr, "  Explanations: disabled")
		}

		return srv.Start()
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 3000, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
