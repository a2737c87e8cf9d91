package main

import (
	"fmt"
	"os"

	"bsviz/internal/arraygen"
	"bsviz/internal/config"
	"bsviz/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	seed       uint64

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bsviz",
	Short: "bsviz - step-by-step binary search visualizer",
	Long: `bsviz animates binary search over a sorted array in the terminal.

Each comparison is recorded as a step. Walk through the steps by hand, let
auto-play advance them at the chosen speed, or print the whole trace.

Run without arguments to start the interactive visualizer.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for interactive mode (it has its own UI)
		if !cmd.HasParent() {
			return nil
		}

		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
	RunE: runInteractive,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: .bsviz/config.yaml)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Random seed for array generation (0 = time based)")

	addSearchFlags(traceCmd)
	traceCmd.Flags().StringVarP(&traceFormat, "format", "f", "text", "Output format: text, json or yaml")

	addSearchFlags(playCmd)
	playCmd.Flags().Float64Var(&playSpeed, "speed", 0, "Speed multiplier (default from config)")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")

	// Add commands to root
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveConfigPath returns the --config value or the default location.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

// loadConfig loads and validates the config, applies --seed, and sets up
// the category loggers.
func loadConfig() (*config.Config, error) {
	path := resolveConfigPath()
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	applyFlagOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if err := logging.Initialize(logging.Options{
		DebugMode:  cfg.Logging.DebugMode,
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Dir:        cfg.Logging.Dir,
		Categories: cfg.Logging.Categories,
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	logging.Boot("config loaded from %s", path)
	return cfg, nil
}

// applyFlagOverrides applies global flags that take precedence over the file.
func applyFlagOverrides(cfg *config.Config) {
	if seed != 0 {
		cfg.Array.Seed = seed
	}
}

// newGenerator builds the array generator from config bounds and seed.
func newGenerator(cfg *config.Config) (*arraygen.Generator, error) {
	return arraygen.New(cfg.Bounds(), cfg.Array.Seed)
}
