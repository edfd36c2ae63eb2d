package main

import (
	"fmt"

	"github.com/aretw0/nhohnhehr/internal/cli"
	"github.com/aretw0/nhohnhehr/pkg/adapters/stream"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [bits|bytes] FILE",
	Short: "Run a program against stdin and stdout",
	Long: `Runs the program until it executes @. Input is read from stdin and output
written to stdout, framed as bits or bytes. With --source redis, FILE names a
program stored with 'push'.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runProgram,
}

func runProgram(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	mode, program, err := parseRunArgs(args)
	if err != nil {
		return err
	}

	opts := cli.RunOptions{
		Program:  program,
		Mode:     cfg.Mode,
		Source:   cli.SourceFile,
		MaxSteps: cfg.MaxSteps,
		Debug:    cfg.Debug,
		LogFile:  cfg.LogFile,
		Redis:    cfg.Redis,
	}
	if mode != "" {
		opts.Mode = mode
	}
	if cmd.Flags().Changed("mode") {
		opts.Mode, _ = cmd.Flags().GetString("mode")
	}
	if cmd.Flags().Changed("max-steps") {
		opts.MaxSteps, _ = cmd.Flags().GetUint64("max-steps")
	}
	opts.Source, _ = cmd.Flags().GetString("source")

	ctx := cli.NewSignalContext(cmd.Context())
	defer ctx.Cancel()

	return cli.RunProgram(ctx, opts)
}

// parseRunArgs accepts "FILE" or "bits|bytes FILE".
func parseRunArgs(args []string) (string, string, error) {
	switch len(args) {
	case 1:
		return "", args[0], nil
	case 2:
		mode, err := stream.ParseMode(args[0])
		if err != nil || args[0] == "" {
			return "", "", fmt.Errorf("first argument must be %q or %q, got %q", stream.ModeBits, stream.ModeBytes, args[0])
		}
		return string(mode), args[1], nil
	}
	return "", "", fmt.Errorf("expected [bits|bytes] FILE")
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("mode", "", "I/O mode: bits or bytes (overrides the positional mode)")
	cmd.Flags().String("source", cli.SourceFile, "Program source: file or redis")
	cmd.Flags().Uint64("max-steps", 0, "Stop after this many steps (0 = unlimited)")
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)

	// 'run' is the default when no command is provided.
	addRunFlags(rootCmd)
	rootCmd.Args = cobra.MaximumNArgs(2)
	rootCmd.RunE = runProgram
}
