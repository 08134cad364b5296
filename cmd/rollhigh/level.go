package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rollhigh/internal/world"
)

var flagShow int

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Print the platforms of a generated level",
	Long: `Generates a level exactly as play would and prints its platforms.
Gaps that a single jump cannot clear with the configured physics are
reported as warnings.

Examples:
  rollhigh level --seed 42
  rollhigh level --seed 42 --show 0
  rollhigh level --difficulty hard --show 50`,
	Args: cobra.NoArgs,
	Run:  runLevel,
}

func init() {
	levelCmd.Flags().IntVar(&flagShow, "show", 20, "Number of platforms to print (0 = all)")
}

func runLevel(cmd *cobra.Command, args []string) {
	logger := mustLogger(os.Stderr)
	cfg := mustConfig(logger)

	params := cfg.GenParams()
	gen, err := world.NewGenerator(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := resolveSeed(flagSeed)
	level, err := gen.Generate(cfg.Level.Count, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating level: %v\n", err)
		os.Exit(1)
	}

	unreachable := level.Unreachable(cfg.Motion())
	blocked := make(map[int]bool, len(unreachable))
	for _, i := range unreachable {
		blocked[i] = true
	}

	fmt.Printf("Level %d: %d platforms, %.1f units long\n\n", seed, level.Len(), level.Length())
	fmt.Printf("  %4s  %7s  %8s  %6s  %10s\n", "#", "x", "z", "gap", "difficulty")
	fmt.Printf("  %4s  %7s  %8s  %6s  %10s\n", "-", "-", "-", "---", "----------")

	show := level.Len()
	if flagShow > 0 && flagShow < show {
		show = flagShow
	}
	for i := 0; i < show; i++ {
		p := level.At(i)
		gap, difficulty := 0.0, 0.0
		if i > 0 {
			gap = p.Center.Z() - level.At(i-1).Center.Z()
			difficulty = params.Ramp.Level(i)
		}

		mark := ""
		if blocked[i] {
			mark = "  unreachable"
		}
		fmt.Printf("  %4d  %7.2f  %8.2f  %6.2f  %10.3f%s\n",
			i, p.Center.X(), p.Center.Z(), gap, difficulty, mark)
	}
	if show < level.Len() {
		fmt.Printf("  ... %d more\n", level.Len()-show)
	}
	fmt.Println()

	for _, i := range unreachable {
		p, prev := level.At(i), level.At(i-1)
		logger.Warn("gap cannot be jumped",
			"platform", i,
			"dz", fmt.Sprintf("%.2f", p.Back()-prev.Front()),
			"dx", fmt.Sprintf("%.2f", p.Center.X()-prev.Center.X()))
	}

	m := cfg.Motion()
	air, _ := m.AirTime(0)
	fmt.Printf("Jump: peak %.2f, %.2fs in the air, %.2f units per axis. %d of %d gaps unreachable.\n",
		m.PeakHeight(), air, m.Speed*air, len(unreachable), level.Len()-1)
}
