package main

import (
	"fmt"

	"github.com/aretw0/nhohnhehr/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check that a program has exactly one room and a start marker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, _ := cmd.Flags().GetString("source")
		res, err := cli.Validate(cmd.Context(), cli.RunOptions{
			Program: args[0],
			Source:  source,
			Redis:   cfg.Redis,
		})
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Program is valid: %dx%d room, starts at %s\n", res.Size, res.Size, res.Start)
		for _, w := range res.Warnings {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().String("source", cli.SourceFile, "Program source: file or redis")
}
