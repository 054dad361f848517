package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/itinerary/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize itinerary configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the data source, markup policy and page server, and writes a .itinerary.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
