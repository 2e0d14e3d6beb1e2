package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/dshills/neocrystal/internal/app"
	"github.com/dshills/neocrystal/internal/config"
	"github.com/dshills/neocrystal/internal/grid"
	"github.com/dshills/neocrystal/internal/grid/backend"
	"github.com/dshills/neocrystal/internal/layout"
	"github.com/dshills/neocrystal/internal/library"
	"github.com/dshills/neocrystal/internal/logging"
	"github.com/dshills/neocrystal/internal/player"
)

// appOptions is the dependency graph: config, logger, terminal, library,
// layout, player, and the hooks that run it.
func appOptions(opts cliOptions) fx.Option {
	return fx.Options(
		fx.Supply(opts),
		fx.Provide(
			newConfig,
			newLogger,
			newGridOptions,
			newTerminal,
			newLibrary,
			newLayout,
			newWatcher,
			newPlayer,
		),
		fx.Invoke(registerHooks),
	)
}

func newConfig(opts cliOptions) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return cfg, err
	}

	if opts.LayoutPath != "" {
		cfg.Layout.Path = opts.LayoutPath
	}
	if opts.WatchSet {
		cfg.Layout.Watch = opts.Watch
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	if opts.MusicDir != "" {
		cfg.Music.Dir = opts.MusicDir
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logging.New(logging.Config{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
		JSON:  cfg.Log.Format == config.FormatJSON,
	})
}

// newGridOptions opens the instruction trace when one is configured.
func newGridOptions(lc fx.Lifecycle, cfg config.Config) (grid.Options, error) {
	if cfg.Trace.Path == "" {
		return grid.DefaultOptions(), nil
	}

	f, err := os.Create(cfg.Trace.Path)
	if err != nil {
		return grid.Options{}, fmt.Errorf("opening trace file: %w", err)
	}
	lc.Append(fx.StopHook(f.Close))

	var tracer grid.Tracer
	switch cfg.Trace.Format {
	case config.FormatJSON:
		tracer = grid.NewJSONTracer(f)
	default:
		tracer = grid.NewTextTracer(f)
	}
	return grid.Options{Tracer: tracer}, nil
}

func newTerminal(cfg config.Config) (*backend.Terminal, error) {
	pairs, err := cfg.PalettePairs()
	if err != nil {
		return nil, err
	}
	palette := backend.DefaultPalette()
	if pairs != nil {
		if palette, err = backend.NewPalette(pairs); err != nil {
			return nil, err
		}
	}
	return backend.NewTerminal(palette)
}

func newLibrary(cfg config.Config, logger *zap.Logger) (*library.Library, error) {
	songs, err := library.Scan(cfg.Music.Dir, cfg.Music.Pattern, cfg.TrackLength())
	if err != nil {
		return nil, err
	}
	logger.Info("library scanned",
		zap.String("dir", cfg.Music.Dir),
		zap.Int("songs", len(songs)))
	return library.New(songs), nil
}

func newLayout(cfg config.Config) (layout.Layout, error) {
	if cfg.Layout.Path == "" {
		return player.DefaultLayout(), nil
	}
	l, err := layout.Load(cfg.Layout.Path, cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		return l, err
	}
	return l, l.Validate(cfg.Grid.Width, cfg.Grid.Height)
}

// newWatcher returns nil unless a layout file is set and watching is on.
func newWatcher(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*layout.Watcher, error) {
	if cfg.Layout.Path == "" || !cfg.Layout.Watch {
		return nil, nil
	}
	w, err := layout.NewWatcher(cfg.Layout.Path, cfg.Grid.Width, cfg.Grid.Height, layout.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(w.Close))
	return w, nil
}

type playerParams struct {
	fx.In

	Config   config.Config
	Logger   *zap.Logger
	Terminal *backend.Terminal
	Library  *library.Library
	Layout   layout.Layout
	Watcher  *layout.Watcher
	Grid     grid.Options
}

func newPlayer(p playerParams) (*app.Player, error) {
	return app.New(p.Terminal, p.Library, app.Options{
		Config:  p.Config,
		Logger:  p.Logger,
		Layout:  p.Layout,
		Watcher: p.Watcher,
		Grid:    p.Grid,
		Version: version,
	})
}

// registerHooks takes over the terminal on start and runs the player on
// its own goroutine. When the player returns, the app shuts down; on stop,
// the player is cancelled before the terminal is restored.
func registerHooks(lc fx.Lifecycle, sd fx.Shutdowner, term *backend.Terminal, p *app.Player, logger *zap.Logger) {
	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	var runErr error

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := term.Init(); err != nil {
				cancel()
				return fmt.Errorf("initializing terminal: %w", err)
			}
			go func() {
				defer close(done)
				code := 0
				if runErr = p.Run(runCtx); runErr != nil {
					logger.Error("player stopped", zap.Error(runErr))
					code = 1
				}
				if err := sd.Shutdown(fx.ExitCode(code)); err != nil {
					logger.Warn("shutdown", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-ctx.Done():
				term.Shutdown()
				return ctx.Err()
			}
			term.Shutdown()
			if runErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
			}
			return nil
		},
	})
}
