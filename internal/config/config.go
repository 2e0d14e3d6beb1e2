package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/neocrystal/internal/grid"
	"github.com/dshills/neocrystal/internal/grid/backend"
)

// Config is the full set of settings.
type Config struct {
	Grid    GridConfig           `toml:"grid"`
	Log     LogConfig            `toml:"log"`
	Trace   TraceConfig          `toml:"trace"`
	Music   MusicConfig          `toml:"music"`
	Layout  LayoutConfig         `toml:"layout"`
	UI      UIConfig             `toml:"ui"`
	Palette map[string]ColorPair `toml:"palette"`
}

// GridConfig is the size of the character grid in cells.
type GridConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `toml:"level"`
	File   string `toml:"file"`
	Format string `toml:"format"`
}

// TraceConfig configures the per-frame instruction trace.
// An empty path disables tracing.
type TraceConfig struct {
	Path   string `toml:"path"`
	Format string `toml:"format"`
}

// MusicConfig locates the library.
type MusicConfig struct {
	Dir     string `toml:"dir"`
	Pattern string `toml:"pattern"`
}

// LayoutConfig points at an optional layout file. Empty uses the built-in
// layout.
type LayoutConfig struct {
	Path  string `toml:"path"`
	Watch bool   `toml:"watch"`
}

// UIConfig holds timing knobs for the player screen.
type UIConfig struct {
	MarqueeSpeedMS int `toml:"marquee_speed_ms"`
	TickMS         int `toml:"tick_ms"`
	VolumeStep     int `toml:"volume_step"`
	SeekSeconds    int `toml:"seek_seconds"`
	TrackSeconds   int `toml:"track_seconds"`
}

// ColorPair is a palette entry. Colors are hex strings.
type ColorPair struct {
	Fg   string `toml:"fg"`
	Bg   string `toml:"bg"`
	Bold bool   `toml:"bold"`
}

// Output formats for the log and the trace.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Grid: GridConfig{Width: 50, Height: 20},
		Log:  LogConfig{Level: "info", Format: FormatText},
		Trace: TraceConfig{
			Format: FormatText,
		},
		Music: MusicConfig{
			Dir:     defaultMusicDir(),
			Pattern: "*.mp3",
		},
		UI: UIConfig{
			MarqueeSpeedMS: 300,
			TickMS:         100,
			VolumeStep:     5,
			SeekSeconds:    5,
			TrackSeconds:   180,
		},
	}
}

// DefaultPath returns ~/.config/neocrystal/config.toml, or "" when no
// config directory is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "neocrystal", "config.toml")
}

func defaultMusicDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "Music"
	}
	return filepath.Join(home, "Music")
}

// Load reads path over the defaults, applies environment overrides, and
// validates the result. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := decode(path, data, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	cfg.applyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults without consulting the
// environment.
func Parse(source string, data []byte) (Config, error) {
	cfg := Default()
	if err := decode(source, data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func decode(source string, data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			pe.Line, pe.Column = derr.Position()
		}
		return pe
	}
	return nil
}

// envMapping maps environment variables to setters.
var envMapping = map[string]func(*Config, string){
	"NEOCRYSTAL_MUSIC_DIR":    func(c *Config, v string) { c.Music.Dir = v },
	"NEOCRYSTAL_LOG_LEVEL":    func(c *Config, v string) { c.Log.Level = v },
	"NEOCRYSTAL_LOG_FILE":     func(c *Config, v string) { c.Log.File = v },
	"NEOCRYSTAL_LOG_FORMAT":   func(c *Config, v string) { c.Log.Format = v },
	"NEOCRYSTAL_TRACE_FILE":   func(c *Config, v string) { c.Trace.Path = v },
	"NEOCRYSTAL_TRACE_FORMAT": func(c *Config, v string) { c.Trace.Format = v },
	"NEOCRYSTAL_LAYOUT":       func(c *Config, v string) { c.Layout.Path = v },
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	for name, set := range envMapping {
		if v, ok := lookup(name); ok {
			set(c, v)
		}
	}
}

// Validate checks settings that would otherwise fail much later.
func (c Config) Validate() error {
	switch {
	case c.Grid.Width <= 0:
		return &ValidationError{Path: "grid.width", Message: "must be positive", Value: c.Grid.Width}
	case c.Grid.Height <= 0:
		return &ValidationError{Path: "grid.height", Message: "must be positive", Value: c.Grid.Height}
	case c.Log.Format != FormatText && c.Log.Format != FormatJSON:
		return &ValidationError{Path: "log.format", Message: "must be text or json", Value: c.Log.Format}
	case c.Trace.Format != FormatText && c.Trace.Format != FormatJSON:
		return &ValidationError{Path: "trace.format", Message: "must be text or json", Value: c.Trace.Format}
	case c.UI.MarqueeSpeedMS <= 0:
		return &ValidationError{Path: "ui.marquee_speed_ms", Message: "must be positive", Value: c.UI.MarqueeSpeedMS}
	case c.UI.TickMS <= 0:
		return &ValidationError{Path: "ui.tick_ms", Message: "must be positive", Value: c.UI.TickMS}
	case c.UI.VolumeStep <= 0 || c.UI.VolumeStep > 100:
		return &ValidationError{Path: "ui.volume_step", Message: "must be within 1..100", Value: c.UI.VolumeStep}
	case c.UI.SeekSeconds <= 0:
		return &ValidationError{Path: "ui.seek_seconds", Message: "must be positive", Value: c.UI.SeekSeconds}
	case c.UI.TrackSeconds <= 0:
		return &ValidationError{Path: "ui.track_seconds", Message: "must be positive", Value: c.UI.TrackSeconds}
	}
	if _, err := c.PalettePairs(); err != nil {
		return &ValidationError{Path: "palette", Message: err.Error(), Value: c.Palette}
	}
	return nil
}

// MarqueeSpeed returns the marquee step interval.
func (c Config) MarqueeSpeed() time.Duration {
	return time.Duration(c.UI.MarqueeSpeedMS) * time.Millisecond
}

// Tick returns the frame loop's clock interval.
func (c Config) Tick() time.Duration {
	return time.Duration(c.UI.TickMS) * time.Millisecond
}

// Seek returns how far one seek key moves playback.
func (c Config) Seek() time.Duration {
	return time.Duration(c.UI.SeekSeconds) * time.Second
}

// TrackLength returns the length given to scanned songs.
func (c Config) TrackLength() time.Duration {
	return time.Duration(c.UI.TrackSeconds) * time.Second
}

// PalettePairs converts the palette table to backend pairs keyed by color
// id. It returns nil when no palette is configured.
func (c Config) PalettePairs() (map[grid.Color]backend.Pair, error) {
	if len(c.Palette) == 0 {
		return nil, nil
	}
	pairs := make(map[grid.Color]backend.Pair, len(c.Palette))
	for key, cp := range c.Palette {
		id, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColor, key)
		}
		pairs[grid.Color(id)] = backend.Pair{
			Foreground: cp.Fg,
			Background: cp.Bg,
			Bold:       cp.Bold,
		}
	}
	return pairs, nil
}
