// rollhigh is an endless platform runner for the terminal: roll a sphere
// forward over floating platforms, jump the gaps, and don't fall.
//
// Usage:
//
//	rollhigh play [mode]     - Play (default mode: classic)
//	rollhigh modes           - List available modes
//	rollhigh level           - Print a generated level
//	rollhigh simulate [mode] - Let the autopilot play headless
//	rollhigh config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set level seed for a reproducible course
//	--config <path>       - Use a custom roller.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Where play writes its log
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rollhigh/internal/config"
	"github.com/vovakirdan/rollhigh/internal/games/roller" // registers the modes
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rollhigh",
	Short: "Roll High or Die - an endless platform runner in your terminal",
	Long: `Roll High or Die puts a sphere on a floating platform. Roll forward,
jump the gaps, and see how far you get before you fall. The further you
roll, the wider the gaps.

Available commands:
  play      - Play a mode
  modes     - Show all available modes
  level     - Print the platforms of a generated level
  simulate  - Watch the autopilot play without a terminal UI
  config    - Print the effective configuration

Examples:
  rollhigh play
  rollhigh play steady --seed 42
  rollhigh level --seed 42 --show 30
  rollhigh simulate --duration 300
  rollhigh config --difficulty hard`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Level seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom roller config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for play and menu (default: no log)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "rollhigh",
		Level:           lvl,
	})
	return logger, nil
}

// mustLogger is newLogger for commands that exit on error.
func mustLogger(w io.Writer) *log.Logger {
	logger, err := newLogger(w, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger
}

// loadConfig resolves the configuration from --config and --difficulty and
// validates it.
func loadConfig(path, difficulty string, logger *log.Logger) (config.RollerConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.RollerConfig{}, err
	}

	cfg, source, err := config.LoadRoller(path)
	if err != nil {
		return config.RollerConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.RollerConfig{}, err
	}

	logger.Debug("config loaded", "source", source, "difficulty", preset)
	return cfg, nil
}

// mustConfig is loadConfig for commands that exit on error.
func mustConfig(logger *log.Logger) config.RollerConfig {
	cfg, err := loadConfig(flagConfig, flagDifficulty, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// resolveSeed returns seed, or a time-based seed for 0.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// modeArg returns the mode named by args, defaulting to classic.
func modeArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return roller.ModeClassic
}
