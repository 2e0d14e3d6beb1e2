// Package main is the entry point for the neocrystal music player.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/dshills/neocrystal/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseFlags(args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if opts.ShowVersion {
		fmt.Printf("neocrystal %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: neocrystal must be run in a terminal")
		return 1
	}

	application := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		appOptions(opts),
	)
	if err := application.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	startCtx, cancelStart := context.WithTimeout(ctx, application.StartTimeout())
	defer cancelStart()
	if err := application.Start(startCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to start: %v\n", err)
		return 1
	}

	code := 0
	select {
	case <-ctx.Done():
	case sig := <-application.Wait():
		code = sig.ExitCode
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), application.StopTimeout())
	defer cancelStop()
	if err := application.Stop(stopCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return code
}

// cliOptions are the command-line settings. Non-empty values override the
// config file.
type cliOptions struct {
	ConfigPath  string
	LayoutPath  string
	LogLevel    string
	LogFile     string
	MusicDir    string
	Watch       bool
	WatchSet    bool
	ShowVersion bool
}

func parseFlags(args []string) (cliOptions, error) {
	var opts cliOptions

	fs := pflag.NewFlagSet("neocrystal", pflag.ContinueOnError)
	fs.StringVarP(&opts.ConfigPath, "config", "c", config.DefaultPath(), "Path to configuration file")
	fs.StringVarP(&opts.LayoutPath, "layout", "l", "", "Layout file (.toml, .yaml, .yml or .lua)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	fs.StringVarP(&opts.MusicDir, "music", "m", "", "Music directory")
	fs.BoolVarP(&opts.Watch, "watch", "w", false, "Reload the layout file when it changes")
	fs.BoolVarP(&opts.ShowVersion, "version", "v", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "neocrystal - terminal music player\n\n")
		fmt.Fprintf(os.Stderr, "Usage: neocrystal [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  neocrystal                         Play ~/Music\n")
		fmt.Fprintf(os.Stderr, "  neocrystal -m ~/Albums             Play another directory\n")
		fmt.Fprintf(os.Stderr, "  neocrystal -l wide.lua -w          Use a scripted layout, reloading on save\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	opts.WatchSet = fs.Changed("watch")
	return opts, nil
}
