// hexfleet is a hex-grid match-3 game for the terminal. Matched cells power
// the modules of a small spaceship.
//
// Usage:
//
//	hexfleet list               - List available boards
//	hexfleet play <board>       - Play a board
//	hexfleet menu               - Pick boards interactively
//	hexfleet serve              - Start SSH server for remote play
//	hexfleet scores <board>     - Show high scores and matched cells
//	hexfleet sim <board>        - Play headless with the built-in move finder
//	hexfleet config dump        - Print the effective gameplay config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.hexfleet/scores.db)
//	--config <path>     - Gameplay config YAML
//	--mode <name>       - classic, endless or blitz
//	--layouts <dir>     - Extra board layouts to register
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexfleet/internal/config"
	"github.com/vovakirdan/hexfleet/internal/games/hexfleet"
	"github.com/vovakirdan/hexfleet/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagMode     string
	flagLayouts  string
	flagLogLevel string
	flagLogFile  string
)

// Resolved by setup before any command runs.
var (
	appConfig config.HexfleetConfig
	appMode   config.Mode
	logger    = log.New(io.Discard)
	logFile   *os.File
)

// tuiAnnotation marks commands that own the terminal; they only log to --log-file.
const tuiAnnotation = "tui"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexfleet",
	Short: "Hexfleet - hex-grid match-3 in your terminal",
	Long: `Hexfleet is a match-3 game on a hexagonal grid. Swap neighboring
cells to line up three or more of a kind; matched cells charge your
ship's lasers, rockets, shields, repair droids and engines.

Available commands:
  list     - Show all available boards
  play     - Play a specific board directly
  menu     - Interactive board picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and matched cells
  sim      - Headless auto-play
  config   - Inspect the gameplay config

Examples:
  hexfleet list
  hexfleet play classic
  hexfleet play hive --mode blitz
  hexfleet menu
  hexfleet serve --ssh :2222
  hexfleet sim crater --swaps 100 --seed 42`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to gameplay config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", string(config.ModeClassic), "Gameplay mode: classic, endless, blitz")
	rootCmd.PersistentFlags().StringVar(&flagLayouts, "layouts", "", "Directory with extra board layouts")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the logger, loads the gameplay config and registers extra layouts.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	case cmd.Annotations[tuiAnnotation] != "":
		out = io.Discard
	}
	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "hexfleet",
		Level:           level,
	})

	appMode, err = config.ParseMode(flagMode)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadHexfleet(flagConfig)
	if err != nil {
		return err
	}
	hexfleet.SetConfig(appConfig)
	hexfleet.SetLogger(logger)

	if flagLayouts != "" {
		n, err := hexfleet.RegisterDir(flagLayouts)
		if err != nil {
			return fmt.Errorf("cannot load layouts: %w", err)
		}
		logger.Debug("registered layouts", "dir", flagLayouts, "count", n)
	}
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if logFile != nil {
		return logFile.Close()
	}
	return nil
}

// openStore opens the scores database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
