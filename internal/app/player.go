// Package app runs the neocrystal player: it owns the library, the screen,
// and the terminal, and turns input, clock ticks, and layout reloads into
// frames.
//
// Everything that touches the grid happens on the goroutine that calls Run.
// Input polling and the layout watcher run on their own goroutines and talk
// to Run over channels.
package app

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/dshills/neocrystal/internal/config"
	"github.com/dshills/neocrystal/internal/grid"
	"github.com/dshills/neocrystal/internal/layout"
	"github.com/dshills/neocrystal/internal/library"
	"github.com/dshills/neocrystal/internal/player"
)

// noticeDuration is how long a message stays in the header.
const noticeDuration = 3 * time.Second

// Display is the terminal the player draws on.
type Display interface {
	grid.Backend
	PollEvent() tcell.Event
	EnableMouse(on bool)
	Sync()
}

// Options configures a Player.
type Options struct {
	// Config supplies grid size and timing.
	Config config.Config

	// Logger receives diagnostics. Nil discards them.
	Logger *zap.Logger

	// Layout places the fields. An empty layout uses the built-in one.
	Layout layout.Layout

	// Watcher delivers layout reloads. Optional.
	Watcher *layout.Watcher

	// Grid configures the grid engine, e.g. its tracer.
	Grid grid.Options

	// Version is shown in the version field.
	Version string

	// Now and Rand replace the clock and shuffle source in tests.
	Now  func() time.Time
	Rand *rand.Rand
}

// Player is the running application.
type Player struct {
	cfg     config.Config
	logger  *zap.Logger
	display Display
	lib     *library.Library
	screen  *player.Screen
	watcher *layout.Watcher
	version string
	now     func() time.Time
	rng     *rand.Rand

	pager   player.Pager
	volume  player.VolumeLevel
	marquee *player.Marquee

	elapsed  time.Duration
	lastTick time.Time

	// Last drawn values, so ticks only queue fields that changed.
	title   string
	seconds int
	cells   int

	loop       bool
	shuffle    bool
	volumeMode bool
	highlight  bool
	mouse      bool

	prompt      player.Prompt
	query       string
	notice      string
	noticeUntil time.Time

	running atomic.Bool
}

// New creates a player drawing on display.
func New(display Display, lib *library.Library, opts Options) (*Player, error) {
	p := &Player{
		cfg:       opts.Config,
		logger:    opts.Logger,
		display:   display,
		lib:       lib,
		watcher:   opts.Watcher,
		version:   opts.Version,
		now:       opts.Now,
		rng:       opts.Rand,
		highlight: true,
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	p.logger = p.logger.Named("player")
	if p.now == nil {
		p.now = time.Now
	}
	if p.rng == nil {
		seed := uint64(time.Now().UnixNano())
		p.rng = rand.New(rand.NewPCG(seed, seed>>32))
	}

	p.screen = player.NewScreen(p.cfg.Grid.Width, p.cfg.Grid.Height, opts.Grid)
	p.screen.UI().OnReject(func(r grid.Reject[player.Field]) {
		p.logger.Debug("write dropped",
			zap.Stringer("field", r.ID),
			zap.Stringer("reason", r.Reason),
			zap.String("text", r.Text))
	})

	l := opts.Layout
	if len(l.Regions) == 0 {
		l = player.DefaultLayout()
	}
	if err := p.screen.Apply(l); err != nil {
		return nil, NewOperationError("apply layout", "", err)
	}

	p.pager = player.NewPager(p.screen.Rows())
	p.volume = player.VolumeLevel{Level: player.MaxVolume / 2, Step: p.cfg.UI.VolumeStep}
	p.resetMarquee("Nothing")
	return p, nil
}

// Screen returns the player's screen.
func (p *Player) Screen() *player.Screen {
	return p.screen
}

// Run draws the first frame and then processes input, ticks, and layout
// reloads until ctx is done or the user quits. Every iteration ends with
// exactly one frame.
func (p *Player) Run(ctx context.Context) error {
	if !p.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer p.running.Store(false)

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go p.pollEvents(events, done)

	ticker := time.NewTicker(p.cfg.Tick())
	defer ticker.Stop()

	var layouts <-chan layout.Layout
	var layoutErrs <-chan error
	if p.watcher != nil {
		layouts = p.watcher.Layouts()
		layoutErrs = p.watcher.Errors()
	}

	p.lastTick = p.now()
	p.Redraw()
	p.Flush()
	p.logger.Info("started", zap.Int("songs", p.lib.Total()))

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if err := p.HandleEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					p.logger.Info("quit")
					return nil
				}
				return err
			}

		case <-ticker.C:
			p.Tick(p.now())

		case l, ok := <-layouts:
			if !ok {
				layouts = nil
				continue
			}
			p.ApplyLayout(l)

		case err, ok := <-layoutErrs:
			if !ok {
				layoutErrs = nil
				continue
			}
			p.notify("layout: " + err.Error())
		}
		p.Flush()
	}
}

// pollEvents forwards terminal events until the display is shut down or
// Run returns.
func (p *Player) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := p.display.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Flush executes the queued frame on the display.
func (p *Player) Flush() {
	p.screen.Execute(p.display)
}

// Redraw queues the whole screen.
func (p *Player) Redraw() {
	p.screen.DrawAll(p.View())
}

// ApplyLayout switches to l, keeping the old layout when l is invalid.
func (p *Player) ApplyLayout(l layout.Layout) {
	if err := p.screen.Apply(l); err != nil {
		p.logger.Warn("layout rejected", zap.Error(err))
		p.notify("layout: " + err.Error())
		return
	}
	p.pager.Resize(p.screen.Rows())
	p.pager.Clamp(p.lib.Len())

	name := "Nothing"
	if s, ok := p.lib.Current(); ok {
		name = s.Name
	}
	p.resetMarquee(name)
	p.Redraw()
	p.logger.Info("layout applied", zap.Int("regions", len(l.Regions)))
}

// View snapshots the state the screen shows.
func (p *Player) View() player.View {
	v := player.View{
		Selected:  p.pager.Index,
		Highlight: p.highlight,
		Page:      p.pager.Page,
		Pages:     p.pager.Pages(p.lib.Len()),
		Prompt:    p.prompt,
		Query:     p.query,
		Notice:    p.notice,
		Title:     p.title,
		Elapsed:   p.elapsed,
		Loop:      p.loop,
		Shuffle:   p.shuffle,
		Volume:    p.volume.Level,
		Version:   p.version,
	}

	end := min(p.pager.Start()+p.pager.Size, p.lib.Len())
	for pos := p.pager.Start(); pos < end; pos++ {
		s, _ := p.lib.At(pos)
		v.Rows = append(v.Rows, player.Row{Name: s.Name, Mark: p.mark(pos)})
	}

	if s, ok := p.lib.Current(); ok {
		v.Artist = s.Artist
		v.Playlist = s.Playlist
		v.Total = s.Duration
	}
	return v
}

func (p *Player) mark(pos int) player.Mark {
	switch {
	case p.lib.IsCurrent(pos) && p.lib.Playing():
		return player.MarkPlaying
	case p.lib.IsCurrent(pos):
		return player.MarkPaused
	case p.lib.IsBlacklisted(pos):
		return player.MarkBlacklisted
	case p.lib.IsNext(pos):
		return player.MarkQueued
	default:
		return player.MarkNone
	}
}

func (p *Player) resetMarquee(text string) {
	w, _ := p.screen.UI().RegionWidth(player.Title)
	p.marquee = player.NewMarquee(w, p.cfg.MarqueeSpeed())
	now := p.now()
	p.marquee.Reset(text, now)
	p.title = p.marquee.Visible(now)
}

func (p *Player) notify(msg string) {
	p.notice = msg
	p.noticeUntil = p.now().Add(noticeDuration)
	p.screen.DrawHeader(p.View())
	p.logger.Info("notice", zap.String("message", msg))
}
