package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bigcalc",
	Short: "Arbitrary-precision decimal calculator",
	Long: `bigcalc evaluates arbitrary-precision integer arithmetic from the
command line: addition, subtraction, multiplication, division, modulo,
exponentiation and comparison, all computed without the precision limits
of a machine integer.`,
}

// activeConfig is the config loaded by rootCmd's PersistentPreRunE, read by
// any command that needs a config-driven default (modexpCmd's table size).
// It starts at defaultConfig so commands behave sanely if that hook never
// runs, e.g. in tests that build their own root command.
var activeConfig = defaultConfig()

func main() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(mulCmd)
	rootCmd.AddCommand(divCmd)
	rootCmd.AddCommand(modCmd)
	rootCmd.AddCommand(powCmd)
	rootCmd.AddCommand(cmpCmd)
	rootCmd.AddCommand(modexpCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a bigcalc.toml config file (default: search upward from cwd)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log the parsed operands before computing")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		activeConfig = cfg
		if cfg.Output.Verbose && !cmd.Flags().Changed("verbose") {
			return cmd.Flags().Set("verbose", "true")
		}
		return nil
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
