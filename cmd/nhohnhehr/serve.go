package main

import (
	"github.com/aretw0/nhohnhehr/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves program runs over HTTP:

  POST /run                  run an inline program
  POST /run/stream           run and stream steps as server-sent events
  POST /validate             check a program
  GET  /programs             list stored programs
  PUT  /programs/{name}      store a program
  POST /programs/{name}/run  run a stored program
  GET  /health, /info, /metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := serveOptions(cmd)
		if cmd.Flags().Changed("addr") {
			opts.Addr, _ = cmd.Flags().GetString("addr")
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		return cli.Serve(ctx, opts)
	},
}

// serveOptions merges config with the flags shared by serve and mcp.
func serveOptions(cmd *cobra.Command) cli.ServeOptions {
	opts := cli.ServeOptions{
		Dir:      cfg.Programs,
		Addr:     cfg.Serve.Addr,
		MaxSteps: cfg.Serve.MaxSteps,
		Debug:    cfg.Debug,
		LogFile:  cfg.LogFile,
		Redis:    cfg.Redis,
	}
	opts.Source, _ = cmd.Flags().GetString("source")
	if cmd.Flags().Changed("dir") {
		opts.Dir, _ = cmd.Flags().GetString("dir")
	}
	if cmd.Flags().Changed("max-steps") {
		opts.MaxSteps, _ = cmd.Flags().GetUint64("max-steps")
	}
	return opts
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().String("source", cli.SourceFile, "Program store: file or redis")
	cmd.Flags().String("dir", ".", "Directory of .nhh programs (file source)")
	cmd.Flags().Uint64("max-steps", 0, "Step budget per run (default from config)")
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addServeFlags(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
}
