// kpoet renders Kotlin source files from YAML declarations.
//
//	kpoet render -o build/generated model.yaml api/
//	kpoet render --stdout model.yaml
//	kpoet watch -o build/generated api/
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "kpoet",
		Short:         "Render Kotlin source files from YAML declarations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "log every rendered file")
	root.AddCommand(newRenderCmd(), newWatchCmd())
	return root
}

// logger returns the logger selected by the --verbose flag.
func logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		root.PrintErrln("Error:", err)
		stop()
		os.Exit(1)
	}
}
