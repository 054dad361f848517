package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/itinerary/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve itinerary pages rendered on every request",
	Long: `Starts an HTTP server that loads the data source on every request and renders
the requested day: / for the first day, /days/{n} for the others. The validated
document is available at /api/trip.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port to listen on (defaults to server.port)")
	serveCmd.Flags().Bool("allow-all-origins", false, "allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	formatter, err := cfg.Formatter()
	if err != nil {
		return err
	}

	allowAll := cfg.Server.AllowAllOrigins
	if cmd.Flags().Changed("allow-all-origins") {
		allowAll, _ = cmd.Flags().GetBool("allow-all-origins")
	}

	srv := server.New(server.Config{
		Port:           intFlagOr(cmd, "port", cfg.Server.Port),
		AllowAll:       allowAll,
		RequestTimeout: time.Duration(cfg.Server.RequestTimeoutSeconds) * time.Second,
	}, newLoader(cfg),
		server.WithFormatter(formatter),
		server.WithHashScript(cfg.HashScript()),
		server.WithLogger(logger))

	ctx, stop := signalContext(cmd)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("starting server: %w", err)
	case <-ctx.Done():
	}

	fmt.Println("\nShutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}
