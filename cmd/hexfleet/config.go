package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexfleet/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the gameplay config",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective config as YAML",
	Long: `Print the gameplay config after the search order and --mode are applied.
The output is a complete config file and can be edited and passed back
with --config.

Search order: --config, ~/.hexfleet/configs/hexfleet.yaml,
./configs/hexfleet.yaml, built-in defaults.

Examples:
  hexfleet config dump > ~/.hexfleet/configs/hexfleet.yaml
  hexfleet config dump --mode blitz`,
	Args: cobra.NoArgs,
	Run:  runConfigDump,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a config file",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigValidate,
}

func init() {
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigDump(_ *cobra.Command, _ []string) {
	cfg := appConfig
	config.ApplyMode(&cfg, appMode)
	out, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}

func runConfigValidate(_ *cobra.Command, args []string) {
	if _, err := config.LoadHexfleet(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok\n", args[0])
}
