package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rollhigh/internal/core"
	"github.com/vovakirdan/rollhigh/internal/games/roller"
	"github.com/vovakirdan/rollhigh/internal/registry"
	"github.com/vovakirdan/rollhigh/internal/storage"
)

var flagDuration float64

var simulateCmd = &cobra.Command{
	Use:   "simulate [mode]",
	Short: "Let the autopilot play headless",
	Long: `Runs the game without a terminal UI at a fixed frame time of 1/fps,
with an autopilot hopping from platform to platform. Deaths are logged
and a summary is printed at the end. Useful for checking that a
configuration is playable.

Examples:
  rollhigh simulate
  rollhigh simulate steady --duration 600
  rollhigh simulate --config ./wide-gaps.yaml --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagDuration, "duration", 120, "Simulated seconds")
}

func runSimulate(cmd *cobra.Command, args []string) {
	modeID := modeArg(args)
	logger := mustLogger(os.Stderr)
	cfg := mustConfig(logger)

	game, err := registry.Create(modeID, registry.Options{Config: cfg, Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	rg, ok := game.(*roller.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: mode %q cannot be simulated\n", modeID)
		os.Exit(1)
	}

	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = resolveSeed(flagSeed)
	rg.Reset(rc)

	dt := time.Second / time.Duration(max(flagFPS, 1))
	frames := int(math.Ceil(flagDuration / dt.Seconds()))
	pilot := roller.NewAutopilot(cfg.Motion())

	logger.Info("simulating", "mode", modeID, "seed", rc.Seed, "seconds", flagDuration, "fps", flagFPS)

	furthest := 0
	for i := 0; i < frames; i++ {
		in := pilot.Decide(rg.Sphere(), rg.Level(), dt.Seconds())
		res := rg.Step(in, dt)
		furthest = max(furthest, pilot.Next()-1)

		if res.Died {
			_, err := store.SaveRun(storage.Run{
				Mode:     modeID,
				Seed:     rc.Seed,
				Distance: res.State.LastScore,
				Duration: res.State.LastRunTime,
			})
			if err != nil {
				logger.Warn("run not recorded", "error", err)
			}
			logger.Info("fell",
				"distance", fmt.Sprintf("%.1f", res.State.LastScore),
				"platform", pilot.Next()-1,
				"at", fmt.Sprintf("%.1fs", float64(i+1)*dt.Seconds()))
		}
	}

	st := rg.State()
	stats, err := store.Stats(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading run log: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seed %d, %.0fs at %d fps\n", rc.Seed, flagDuration, flagFPS)
	fmt.Printf("  deaths:            %d\n", st.Deaths)
	fmt.Printf("  furthest platform: %d of %d\n", furthest, rg.Level().Len()-1)
	fmt.Printf("  current run:       %.1f\n", st.Score)
	if stats.Runs > 0 {
		fmt.Printf("  best finished run: %.1f (average %.1f)\n", stats.Best, stats.Average)
	}
}
