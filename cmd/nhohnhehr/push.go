package main

import (
	"fmt"

	"github.com/aretw0/nhohnhehr/internal/cli"
	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:   "push NAME FILE",
	Short: "Store a program so it can be run by name",
	Long:  `Validates FILE and stores it as NAME in Redis (or, with --source file, in the programs directory).`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, _ := cmd.Flags().GetString("source")
		if err := cli.Push(cmd.Context(), source, cfg.Programs, args[0], args[1], cfg.Redis); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Stored %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pushCmd)
	pushCmd.Flags().String("source", cli.SourceRedis, "Program store: redis or file")
}
