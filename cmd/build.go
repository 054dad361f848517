package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/itinerary/internal/progress"
	"github.com/ziadkadry99/itinerary/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate a static itinerary website",
	Long: `Generates index.html and one day-N.html page per day, with the stylesheet and
script next to them. With --watch the data file is watched and open pages reload
after every rebuild.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir)")
	buildCmd.Flags().Bool("serve", false, "start a local HTTP server after generating")
	buildCmd.Flags().Int("port", 8080, "port for the local dev server (defaults to server.port)")
	buildCmd.Flags().Bool("open", false, "open browser automatically when serving")
	buildCmd.Flags().Bool("watch", false, "rebuild and reload pages when the data file changes (implies --serve)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	formatter, err := cfg.Formatter()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	serve, _ := cmd.Flags().GetBool("serve")
	watch, _ := cmd.Flags().GetBool("watch")
	serve = serve || watch

	l := newLoader(cfg)
	if watch && l.IsRemote() {
		return fmt.Errorf("--watch needs a local data file, %s is remote", cfg.DataSource)
	}

	ctx, stop := signalContext(cmd)
	defer stop()

	generator := site.NewSiteGenerator(l, outputDir)
	generator.Formatter = formatter
	generator.HashScript = cfg.HashScript()
	generator.LiveReload = watch
	generator.Reporter = progress.NewReporter()
	generator.Logger = logger

	pageCount, err := generator.Generate(ctx)
	if err != nil {
		if !serve {
			return fmt.Errorf("building site: %w\nCheck that %s exists and holds a valid itinerary", err, cfg.DataSource)
		}
		fmt.Printf("Warning: %v (pages show the error panel)\n", err)
	} else {
		fmt.Printf("Static site generated: %s (%d pages)\n", outputDir, pageCount)
	}

	if !serve {
		return nil
	}

	port := intFlagOr(cmd, "port", cfg.Server.Port)
	openBrowser, _ := cmd.Flags().GetBool("open")

	var reload *site.Reloader
	watchDone := make(chan error, 1)
	if watch {
		reload = site.NewReloader(logger)
		generator.Reporter = progress.Nop{}
		debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
		watcher, err := site.NewWatcher(cfg.DataSource, debounce, func(ctx context.Context) {
			n, err := generator.Generate(ctx)
			if err != nil {
				logger.Warn("rebuild failed", zap.Error(err))
			} else {
				logger.Info("rebuilt", zap.Int("pages", n))
			}
			reload.Broadcast()
		}, logger)
		if err != nil {
			return fmt.Errorf("watching %s: %w", cfg.DataSource, err)
		}
		go func() { watchDone <- watcher.Run(ctx) }()
		fmt.Printf("Watching %s for changes\n", cfg.DataSource)
	} else {
		watchDone <- nil
	}

	serveErr := site.Serve(ctx, outputDir, port, openBrowser, reload)
	stop()
	if err := <-watchDone; err != nil {
		logger.Warn("watcher stopped", zap.Error(err))
	}
	if serveErr != nil {
		return fmt.Errorf("serving site: %w", serveErr)
	}
	return nil
}
