package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/itinerary/internal/integrity"
)

var verifyCmd = &cobra.Command{
	Use:   "verify-integrity",
	Short: "Check the hash library against its configured integrity value",
	Long: `Downloads the hash library script pages load and verifies it against the
configured Subresource Integrity value. A mismatch exits with status 1.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().String("url", "", "override hash_library.url")
	verifyCmd.Flags().String("integrity", "", "override hash_library.integrity")
	verifyCmd.Flags().Duration("timeout", 30*time.Second, "download timeout")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	url := cfg.HashLibrary.URL
	if v, _ := cmd.Flags().GetString("url"); v != "" {
		url = v
	}
	expected := cfg.HashLibrary.Integrity
	if v, _ := cmd.Flags().GetString("integrity"); v != "" {
		expected = v
	}
	if expected == "" {
		return fmt.Errorf("no integrity value configured\nSet hash_library.integrity or pass --integrity")
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")

	ctx, stop := signalContext(cmd)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	script := integrity.HashLibrary(url, expected, cfg.HashLibrary.CrossOrigin)
	if err := script.VerifyRemote(ctx, &http.Client{}); err != nil {
		logger.Error("hash library verification failed", zap.String("url", script.URL), zap.Error(err))
		return fmt.Errorf("verifying %s: %w", script.URL, err)
	}

	fmt.Printf("OK: %s matches %s\n", script.URL, script.Integrity)
	return nil
}
