// Package config loads lifegrid settings from defaults, an optional YAML file
// and LIFEGRID_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"lifegrid/internal/core"
)

// DefaultPath is the config file picked up from the working directory when no
// explicit path is given.
const DefaultPath = "lifegrid.yaml"

// Config contains all lifegrid settings. Values are read once at start-up.
type Config struct {
	Grid GridConfig `yaml:"grid"`
	Cell CellConfig `yaml:"cell"`

	// StripHeight is the pixel height of the banner strip under the grid.
	StripHeight int `yaml:"strip_height"`

	// Throttle is the number of rendered frames per generation.
	Throttle int `yaml:"throttle"`

	// FPS is the target frame rate of the host loop.
	FPS int `yaml:"fps"`

	// ToggleKey switches between edit and run mode.
	ToggleKey string `yaml:"toggle_key"`

	Title   string        `yaml:"title"`
	Assets  AssetsConfig  `yaml:"assets"`
	Logging LoggingConfig `yaml:"logging"`
}

// GridConfig sets the board dimensions.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// CellConfig sets the on-screen cell geometry in pixels.
type CellConfig struct {
	Size   int `yaml:"size"`
	Border int `yaml:"border"`
}

// AssetsConfig names optional media files. An empty path disables the asset.
type AssetsConfig struct {
	Music  string `yaml:"music"`
	Banner string `yaml:"banner"`
}

// LoggingConfig configures log verbosity: "info", "debug" or "trace".
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the reference configuration.
func Default() *Config {
	return &Config{
		Grid:        GridConfig{Rows: 25, Cols: 35},
		Cell:        CellConfig{Size: 25, Border: 1},
		StripHeight: 20,
		Throttle:    core.DefaultThrottle,
		FPS:         30,
		ToggleKey:   string(core.KeySpace),
		Title:       "Conway's Game of Life",
		Assets: AssetsConfig{
			Music:  "music.mp3",
			Banner: "bottom_txt.png",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load resolves the configuration. An empty path falls back to DefaultPath
// when that file exists; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err == nil {
		fileCfg, loadErr := LoadFromFile(path)
		if loadErr != nil {
			return nil, fmt.Errorf("loading config file: %w", loadErr)
		}
		cfg = fileCfg
	} else if explicit || !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading config file: %w", err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.ToggleKey = strings.ToLower(cfg.ToggleKey)
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Grid.Rows, c.Grid.Cols)
	}
	if c.Cell.Size <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.Cell.Size)
	}
	if c.Cell.Border < 0 {
		return fmt.Errorf("cell border must be non-negative, got %d", c.Cell.Border)
	}
	if c.StripHeight < 0 {
		return fmt.Errorf("strip height must be non-negative, got %d", c.StripHeight)
	}
	if c.Throttle < 1 {
		return fmt.Errorf("throttle must be at least 1, got %d", c.Throttle)
	}
	if c.FPS < 1 {
		return fmt.Errorf("fps must be at least 1, got %d", c.FPS)
	}
	if c.ToggleKey == "" {
		return errors.New("toggle key must not be empty")
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Layout derives the pixel geometry of the canvas.
func (c *Config) Layout() Layout {
	return Layout{
		Rows:   c.Grid.Rows,
		Cols:   c.Grid.Cols,
		Cell:   c.Cell.Size,
		Border: c.Cell.Border,
		Strip:  c.StripHeight,
	}
}

// Layout is the pixel geometry of the rendered board.
type Layout struct {
	Rows, Cols int
	Cell       int
	Border     int
	Strip      int
}

// Pitch is the distance in pixels between the origins of adjacent cells.
func (l Layout) Pitch() int { return l.Cell + 2*l.Border }

// Width returns the canvas width in pixels.
func (l Layout) Width() int { return l.Cols * l.Pitch() }

// GridHeight returns the height of the board area without the strip.
func (l Layout) GridHeight() int { return l.Rows * l.Pitch() }

// Height returns the canvas height in pixels.
func (l Layout) Height() int { return l.GridHeight() + l.Strip }

// CellRect returns the filled rectangle of cell (r, c) as x, y, w, h.
func (l Layout) CellRect(r, c int) (x, y, w, h int) {
	p := l.Pitch()
	return c*p + l.Border, r*p + l.Border, l.Cell, l.Cell
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIFEGRID_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Grid.Rows = n
		}
	}
	if v := os.Getenv("LIFEGRID_COLS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Grid.Cols = n
		}
	}
	if v := os.Getenv("LIFEGRID_THROTTLE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Throttle = n
		}
	}
	if v := os.Getenv("LIFEGRID_FPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.FPS = n
		}
	}
	if v := os.Getenv("LIFEGRID_MUSIC"); v != "" {
		cfg.Assets.Music = v
	}
	if v := os.Getenv("LIFEGRID_BANNER"); v != "" {
		cfg.Assets.Banner = v
	}
	if v := os.Getenv("LIFEGRID_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
