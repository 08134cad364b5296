package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rollhigh/internal/config"
	"github.com/vovakirdan/rollhigh/internal/core"
	"github.com/vovakirdan/rollhigh/internal/platform/tui"
	"github.com/vovakirdan/rollhigh/internal/registry"
	"github.com/vovakirdan/rollhigh/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start rolling. The mode defaults to classic.

Controls:
  Up/W       - Roll forward
  Down/S     - Roll back
  Left/A     - Roll left
  Right/D    - Roll right
  Space      - Jump
  P/Esc      - Pause
  Tab        - Runs of this session
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Gaps widen more slowly
  normal - The configured ramp
  hard   - Start as if 20 platforms in
  fixed  - Gaps never widen

Runs are kept only until you quit.

Examples:
  rollhigh play
  rollhigh play steady
  rollhigh play --difficulty hard
  rollhigh play --seed 42 --log-file /tmp/rollhigh.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := modeArg(args)

	// Check if mode exists
	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'rollhigh modes' to see available modes.")
		os.Exit(1)
	}

	logger, closeLog := openGameLogger()
	defer closeLog()
	cfg := mustConfig(logger)

	game, err := registry.Create(modeID, registry.Options{Config: cfg, Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	rc := terminalConfig()

	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("run log unavailable", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	seed, runErr := tui.Run(game, store, rc, tuiOptions(cfg, logger))

	if store != nil {
		printSummary(store, modeID, seed)
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openGameLogger returns the logger for interactive commands. The game owns
// the terminal, so logs go to --log-file or nowhere.
func openGameLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return mustLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	return mustLogger(f), func() { f.Close() }
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(flagSeed),
	}
}

func tuiOptions(cfg config.RollerConfig, logger *log.Logger) tui.Options {
	return tui.Options{
		HoldInitial: time.Duration(cfg.Input.HoldInitialMS) * time.Millisecond,
		HoldRepeat:  time.Duration(cfg.Input.HoldRepeatMS) * time.Millisecond,
		Logger:      logger,
	}
}

// printSummary prints the session's runs after the terminal is restored.
func printSummary(store *storage.Store, modeID string, seed int64) {
	st, err := store.Stats(modeID)
	if err != nil || st.Runs == 0 {
		fmt.Printf("Seed %d. No runs finished.\n", seed)
		return
	}

	fmt.Printf("Seed %d. %d runs, best %.1f, average %.1f, %.0fs alive.\n",
		seed, st.Runs, st.Best, st.Average, st.TimeAlive)
}
