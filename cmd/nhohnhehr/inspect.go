package main

import (
	"os"

	"github.com/aretw0/nhohnhehr/internal/cli"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Describe a program and optionally trace a bounded run",
	Long: `Prints a Markdown report of the program room: its size, start marker and
instructions. With --trace the program is run on --input (bits) for at most
--max-steps steps and the report adds the final state and a Mermaid chart of
the rooms that were grown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, _ := cmd.Flags().GetString("source")
		trace, _ := cmd.Flags().GetBool("trace")
		input, _ := cmd.Flags().GetString("input")
		maxSteps, _ := cmd.Flags().GetUint64("max-steps")
		raw, _ := cmd.Flags().GetBool("raw")

		return cli.Inspect(cmd.Context(), cli.InspectOptions{
			RunOptions: cli.RunOptions{
				Program:  args[0],
				Source:   source,
				MaxSteps: maxSteps,
				Redis:    cfg.Redis,
			},
			Trace: trace,
			Input: input,
			Raw:   raw,
		}, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().String("source", cli.SourceFile, "Program source: file or redis")
	inspectCmd.Flags().Bool("trace", false, "Run the program and report the outcome")
	inspectCmd.Flags().String("input", "", "Input bits for --trace")
	inspectCmd.Flags().Uint64("max-steps", cli.DefaultInspectSteps, "Step budget for --trace")
	inspectCmd.Flags().Bool("raw", false, "Print Markdown without terminal rendering")
}
