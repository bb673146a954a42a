package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexfleet/internal/core"
	"github.com/vovakirdan/hexfleet/internal/games/hexfleet"
	"github.com/vovakirdan/hexfleet/internal/registry"
	"github.com/vovakirdan/hexfleet/internal/storage"
)

var (
	flagSimSwaps int
	flagSimRuns  int
	flagSimSave  bool
)

var simCmd = &cobra.Command{
	Use:   "sim <board>",
	Short: "Play a board headless",
	Long: `Play a board without a terminal UI. Every swap is the first playable
move the engine finds, and each swap fully resolves before the next.
Runs are reproducible with --seed; run i uses seed+i.

Examples:
  hexfleet sim classic
  hexfleet sim hive --swaps 200 --seed 7
  hexfleet sim crater --runs 10 --mode endless
  hexfleet sim classic --save --log-level debug`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimSwaps, "swaps", 50, "Maximum swaps per run")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record results in the scores database")
}

func runSim(cmd *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
		os.Exit(1)
	}

	var store *storage.Store
	if flagSimSave {
		store = openStore()
		if store != nil {
			defer store.Close()
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	for i := range flagSimRuns {
		rg, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}
		game, ok := rg.(*hexfleet.Game)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: %q cannot be simulated\n", gameID)
			os.Exit(1)
		}
		game.SetMode(appMode)

		runSeed := seed + int64(i)
		game.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: runSeed})
		res, err := game.Autoplay(flagSimSwaps)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Run %d failed: %v\n", i+1, err)
			os.Exit(1)
		}
		printSimResult(i+1, runSeed, res)

		if store != nil {
			rec := storage.GameRecord{
				GameID:   gameID,
				Score:    res.Score,
				MaxChain: res.Stats.MaxChain,
				Tallies:  make(map[string]int),
			}
			for _, ct := range res.Tallies.Types() {
				rec.Tallies[ct.String()] = res.Tallies.Count(ct)
			}
			if _, err := store.SaveGame(rec); err != nil {
				logger.Warn("could not save run", "run", i+1, "error", err)
			}
		}
	}
}

func printSimResult(run int, seed int64, res hexfleet.AutoplayResult) {
	fmt.Printf("Run %d  board=%s mode=%s seed=%d\n", run, res.Layout, res.Mode, seed)
	fmt.Printf("  swaps %d  score %d  reshuffles %d\n", res.Swaps, res.Score, res.Reshuffles)
	fmt.Printf("  rollbacks %d  cascades %d  max chain x%d\n",
		res.Stats.Rollbacks, res.Stats.Cascades, res.Stats.MaxChain)
	fmt.Printf("  ship: %s\n", res.Ship)
	if res.GameOver {
		fmt.Printf("  game over: %s\n", res.Reason)
	}
	for _, ct := range res.Tallies.Types() {
		fmt.Printf("  %-16s %d\n", ct, res.Tallies.Count(ct))
	}
	fmt.Println()
}
