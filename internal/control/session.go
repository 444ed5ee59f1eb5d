package control

import (
	"context"
	"log/slog"

	"lifegrid/internal/config"
	"lifegrid/internal/core"
	"lifegrid/internal/logging"
	"lifegrid/internal/sims/life"
)

// Options configures a Session.
type Options struct {
	Rows, Cols int
	// Pitch is the pixel distance between adjacent cell origins.
	Pitch     int
	Throttle  int
	ToggleKey core.Key
	Logger    *slog.Logger
}

// OptionsFromConfig derives session options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config, logger *slog.Logger) Options {
	return Options{
		Rows:      cfg.Grid.Rows,
		Cols:      cfg.Grid.Cols,
		Pitch:     cfg.Layout().Pitch(),
		Throttle:  cfg.Throttle,
		ToggleKey: core.Key(cfg.ToggleKey),
		Logger:    logger,
	}
}

// Stats is a snapshot of session counters for status displays.
type Stats struct {
	Mode       core.Mode
	Generation int
	Population int
	Frame      int
}

// Session owns the board and wires the controller, throttle and rule engine
// together. It is driven by exactly one goroutine.
type Session struct {
	life     *life.Life
	ctl      *Controller
	throttle *core.Throttle
	log      *slog.Logger
	frame    int
}

// NewSession returns a session with an empty board in edit mode.
func NewSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Session{
		life:     life.New(opts.Rows, opts.Cols),
		ctl:      NewController(opts.Pitch, opts.ToggleKey),
		throttle: core.NewThrottle(opts.Throttle),
		log:      logger,
	}
}

// Frame applies the frame's events in order, then lets the throttle decide
// whether to advance one generation. It reports true once a quit event has
// been received; events after the quit are dropped but the frame completes.
func (s *Session) Frame(events []core.Event) bool {
	if s.ctl.Quitting() {
		return true
	}
	g := s.life.Grid()
	for _, ev := range events {
		switch s.ctl.Apply(g, ev) {
		case ModeChanged:
			s.log.Debug("mode changed", "mode", s.ctl.Mode().String(), "generation", s.life.Generation())
		case Quit:
			s.log.Debug("quit requested", "frame", s.frame)
		}
		if s.ctl.Quitting() {
			break
		}
	}

	if s.throttle.Tick(s.ctl.Mode()) {
		s.life.Step()
		s.log.Log(context.Background(), logging.LevelTrace, "generation",
			"generation", s.life.Generation(), "population", s.life.Grid().Population())
	}
	s.frame++
	return s.ctl.Quitting()
}

// Grid exposes the current generation for rendering.
func (s *Session) Grid() *core.Grid { return s.life.Grid() }

// Mode returns the active mode.
func (s *Session) Mode() core.Mode { return s.ctl.Mode() }

// Controller exposes the interaction controller.
func (s *Session) Controller() *Controller { return s.ctl }

// Stats returns the current counters.
func (s *Session) Stats() Stats {
	return Stats{
		Mode:       s.ctl.Mode(),
		Generation: s.life.Generation(),
		Population: s.life.Grid().Population(),
		Frame:      s.frame,
	}
}
