package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssm-admin/ssm-api/internal/config"
	"github.com/ssm-admin/ssm-api/internal/observability"
)

var rootCmd = &cobra.Command{
	Use:   "ssm-api",
	Short: "Staff and stock management API",
	Long: `Staff and stock management API. Usage:

	ssm-api serve
	ssm-api migrate up
	ssm-api migrate down --steps 1
`,
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and builds the logger shared by every command.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init logger: %w", err)
	}
	return cfg, logger, nil
}
