package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rollhigh/internal/platform/tui"
	"github.com/vovakirdan/rollhigh/internal/registry"
	"github.com/vovakirdan/rollhigh/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick modes from a menu",
	Long: `Open the mode picker. Quitting a mode returns to the menu, and the
menu shows this session's best distance per mode.

Examples:
  rollhigh menu
  rollhigh menu --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	logger, closeLog := openGameLogger()
	defer closeLog()
	cfg := mustConfig(logger)

	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("run log unavailable", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	rc := terminalConfig()
	played := make(map[string]int64) // mode -> seed of its last session
	var order []string
	lastMode := ""

	for {
		result, err := tui.RunMenu(store, rc, lastMode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
			os.Exit(1)
		}
		if result.Quit {
			break
		}
		rc = result.Config

		game, err := registry.Create(result.ModeID, registry.Options{Config: cfg, Logger: logger})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}

		seed, err := tui.Run(game, store, rc, tuiOptions(cfg, logger))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}

		if _, ok := played[result.ModeID]; !ok {
			order = append(order, result.ModeID)
		}
		played[result.ModeID] = seed
		lastMode = result.ModeID

		// A fixed --seed replays the same course; otherwise roll a new one.
		if flagSeed == 0 {
			rc.Seed = resolveSeed(0)
		}
	}

	if store == nil {
		return
	}
	for _, id := range order {
		fmt.Printf("%s: ", id)
		printSummary(store, id, played[id])
	}
}
