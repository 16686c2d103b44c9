package cmd

import (
	"fmt"

	"srcstruct/pkg/config"
	"srcstruct/pkg/export"
	"srcstruct/pkg/logging"
	"srcstruct/pkg/version"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// runExport resolves the configuration and writes the snapshot. Positional
// arguments replace the configured roots.
func runExport(cmd *cobra.Command, v *viper.Viper, cfgFile string, args []string) error {
	if err := config.ReadInConfig(v, cfgFile, logging.Logger); err != nil {
		logging.Logger.Error("Failed to load configuration", zap.Error(err))
		return err
	}

	cfg := config.FromViper(v)
	if cfg.Debug {
		if err := logging.Setup(true, version.AppName, version.Version); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}
	logger := logging.Logger

	if len(args) > 0 {
		cfg.Roots = args
	}

	roots, output, err := cfg.Resolve()
	if err != nil {
		logger.Error("Invalid configuration", zap.Error(err))
		return fmt.Errorf("invalid configuration: %w", err)
	}

	summary, err := export.New(nil, logger).Export(roots, output)
	if err != nil {
		logger.Error("Failed to execute export", zap.Error(err))
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Structure saved to: %s\n", summary.Destination)
	return nil
}
