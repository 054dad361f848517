package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/itinerary/internal/page"
	"github.com/ziadkadry99/itinerary/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the itinerary in the terminal",
	Long:  `Opens an interactive terminal viewer. Switch days with the arrow keys, h/l, tab or the number keys; quit with q.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		formatter, err := cfg.Formatter()
		if err != nil {
			return err
		}

		ctx, stop := signalContext(cmd)
		defer stop()

		target := tui.NewTarget()
		p := page.Open(ctx, newLoader(cfg), target,
			page.WithFormatter(formatter),
			page.WithLogger(logger))

		return tui.Run(ctx, tui.New(p, target))
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
