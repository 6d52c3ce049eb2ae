package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gansputra.dev/internal/config"
	"gansputra.dev/internal/logging"
)

var (
	// Global flags
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio site server",
	Long: `Serves the AMV, GFX and project showcase with its audio player,
contact form and background effects.

Content is read from YAML files under DATA_PATH; settings come from the
environment and an optional .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.Dev)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	exportCmd.Flags().Uint64Var(&exportSeed, "seed", 0, "Seed for card order and star field (0 picks one)")
	exportCmd.Flags().IntVar(&exportFrames, "frames", 10, "Number of star field frames to write")
	submissionsCmd.Flags().IntVarP(&submissionsLimit, "limit", "n", 20, "Number of submissions to list")

	rootCmd.AddCommand(serveCmd, exportCmd, submissionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
