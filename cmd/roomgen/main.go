// Package main is the entry point for roomgen.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JnyJny/DungeonGenerator/internal/cli"
	"github.com/JnyJny/DungeonGenerator/internal/telemetry"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stderr io.Writer, args []string) error {
	var verbose bool

	c := cli.New(stderr, cli.LogInfo)

	// A missing .env is fine, variables may be set directly
	envErr := godotenv.Load()

	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			c.Logger.Warn("telemetry setup failed, running without traces", "err", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					c.Logger.Error("shutting down telemetry", "err", err)
				}
			}()
		}
	}

	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if envErr != nil {
			c.Logger.Debug("no .env file loaded", "err", envErr)
		}
		return nil
	}

	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set.
// It reports whether tracing should be enabled.
func setupOTelEnv() bool {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		return true
	}

	apiKey := os.Getenv("HONEYCOMB_ROOMGEN_API_KEY")
	if apiKey == "" {
		return false
	}
	dataset := os.Getenv("HONEYCOMB_ROOMGEN_DATASET")
	if dataset == "" {
		dataset = "roomgen"
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
