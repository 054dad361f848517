package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/itinerary/internal/config"
	"github.com/ziadkadry99/itinerary/internal/logging"
)

var (
	cfgFile string
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "itinerary",
	Short: "Render a day-by-day travel itinerary as web pages or in the terminal",
	Long: `Itinerary reads a trip description (viatge.json) and presents it as a
tabbed day-by-day view: a static site, a local page server, or an
interactive terminal viewer.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := ""
		if cfg, err := config.Load(cfgFile); err == nil {
			level = cfg.LogLevel
		}
		var err error
		logger, err = logging.New(level, verbose)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
