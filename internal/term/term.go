// Package term hosts a session in a terminal using tcell. Each board cell is
// drawn two columns wide so cells look roughly square.
package term

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/config"
	"lifegrid/internal/control"
	"lifegrid/internal/core"
	"lifegrid/internal/logging"
	"lifegrid/internal/ui"
)

const cellWidth = 2

// Options configures the terminal host.
type Options struct {
	Config *config.Config
	Logger *slog.Logger
}

// NewSession builds a session whose pointer coordinates are board cells, which
// is what the translator emits.
func NewSession(cfg *config.Config, logger *slog.Logger) *control.Session {
	return control.NewSession(control.Options{
		Rows:      cfg.Grid.Rows,
		Cols:      cfg.Grid.Cols,
		Pitch:     1,
		Throttle:  cfg.Throttle,
		ToggleKey: core.Key(cfg.ToggleKey),
		Logger:    logger,
	})
}

// Run opens the terminal and blocks until the session quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising terminal: %w", err)
	}
	defer screen.Fini()

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	session := NewSession(opts.Config, logger)
	Loop(ctx, screen, session, opts.Config)

	stats := session.Stats()
	logger.Info("session ended", "generation", stats.Generation, "frames", stats.Frame)
	return nil
}

// Loop drives session on an initialised screen, one frame per fps tick, until
// a quit event arrives or ctx is done.
func Loop(ctx context.Context, screen tcell.Screen, session *control.Session, cfg *config.Config) {
	screen.EnableMouse()
	screen.HideCursor()

	input := make(chan tcell.Event, 64)
	stop := make(chan struct{})
	go screen.ChannelEvents(input, stop)
	defer close(stop)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	var tr Translator
	var events []core.Event
	for {
		events = events[:0]
		if ctx.Err() != nil {
			events = append(events, core.Quit())
		}
	drain:
		for {
			select {
			case ev, ok := <-input:
				if !ok {
					events = append(events, core.Quit())
					break drain
				}
				if _, resized := ev.(*tcell.EventResize); resized {
					screen.Sync()
					continue
				}
				if e, ok := tr.Translate(ev); ok {
					events = append(events, e)
				}
			default:
				break drain
			}
		}

		done := session.Frame(events)
		Draw(screen, session.Grid(), session.Stats(), cfg.ToggleKey)
		screen.Show()
		if done {
			return
		}

		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}
}

// Translator converts tcell events into session events. Mouse reports carry
// the held buttons, so a press is emitted only when a button goes down.
type Translator struct {
	buttons tcell.ButtonMask
}

var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button core.Button
}{
	{tcell.Button1, core.ButtonPrimary},
	{tcell.Button2, core.ButtonSecondary},
	{tcell.Button3, core.ButtonMiddle},
}

// Translate returns the session event for ev, if any.
func (t *Translator) Translate(ev tcell.Event) (core.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			return core.Quit(), true
		case tcell.KeyEnter:
			return core.KeyPress(core.KeyEnter), true
		case tcell.KeyRune:
			if ev.Rune() == ' ' {
				return core.KeyPress(core.KeySpace), true
			}
			return core.KeyPress(core.Key(strings.ToLower(string(ev.Rune())))), true
		}
	case *tcell.EventMouse:
		held := ev.Buttons()
		pressed := held &^ t.buttons
		t.buttons = held
		for _, b := range mouseButtons {
			if pressed&b.mask != 0 {
				x, y := ev.Position()
				return core.PointerPress(x/cellWidth, y, b.button), true
			}
		}
	}
	return core.Event{}, false
}

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorWhite)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
)

// Draw paints the board and a status line beneath it.
func Draw(screen tcell.Screen, v core.View, stats control.Stats, toggleKey string) {
	for r := 0; r < v.Rows(); r++ {
		for c := 0; c < v.Cols(); c++ {
			style := deadStyle
			if v.Alive(r, c) {
				style = aliveStyle
			}
			for i := 0; i < cellWidth; i++ {
				screen.SetContent(c*cellWidth+i, r, ' ', nil, style)
			}
		}
	}

	width := v.Cols() * cellWidth
	line := ui.StatusLine(stats, toggleKey)
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(line) {
			ch = rune(line[x])
		}
		screen.SetContent(x, v.Rows(), ch, nil, statusStyle)
	}
}
