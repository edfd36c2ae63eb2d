package main

import (
	"fmt"
	"os"

	"github.com/aretw0/nhohnhehr/internal/config"
	"github.com/spf13/cobra"
)

// cfg is loaded once before any command runs; flags override it.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "nhohnhehr [bits|bytes] FILE",
	Short: "Nhohnhehr is a two-dimensional language whose program grows new rooms as it runs",
	Long: `Runs a Nhohnhehr program: a square room bordered by +, - and |, entered at $.

   bits/bytes: specify i/o mode

   In bits mode, i/o uses the characters '0' and '1'
     (and when reading input, everything that's not '0'
      or '1' is ignored).
   In bytes mode, i/o is done 8 bits at a time, most significant bit first.

   If no mode is given, bytes mode is used.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded

		if cmd.Flags().Changed("debug") {
			cfg.Debug, _ = cmd.Flags().GetBool("debug")
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile, _ = cmd.Flags().GetString("log-file")
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every step to stderr")
	rootCmd.PersistentFlags().String("log-file", "", "Also append logs to this file")
}
