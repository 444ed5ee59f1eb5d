//go:build ebiten

package app

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifegrid/internal/config"
	"lifegrid/internal/control"
	"lifegrid/internal/core"
	"lifegrid/internal/logging"
	"lifegrid/internal/media"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"
)

var pointerButtons = []struct {
	mouse  ebiten.MouseButton
	button core.Button
}{
	{ebiten.MouseButtonLeft, core.ButtonPrimary},
	{ebiten.MouseButtonRight, core.ButtonSecondary},
	{ebiten.MouseButtonMiddle, core.ButtonMiddle},
}

// Game adapts a control.Session to the ebiten.Game interface.
type Game struct {
	ctx     context.Context
	session *control.Session
	painter *render.GridPainter
	hud     *ui.HUD
	layout  config.Layout
	bg      color.Color

	keys   []ebiten.Key
	events []core.Event
}

// New constructs a Game for the provided session. banner may be nil.
func New(ctx context.Context, cfg *config.Config, session *control.Session, banner *ebiten.Image) *Game {
	l := cfg.Layout()
	palette := render.DefaultPalette()
	return &Game{
		ctx:     ctx,
		session: session,
		painter: render.NewGridPainter(l, palette),
		hud:     ui.NewHUD(l, cfg.ToggleKey, banner),
		layout:  l,
		bg:      palette.Background,
	}
}

// Update drains this frame's input into the session.
func (g *Game) Update() error {
	g.events = g.collect(g.events[:0])
	if g.session.Frame(g.events) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) collect(events []core.Event) []core.Event {
	if ebiten.IsWindowBeingClosed() || g.ctx.Err() != nil {
		events = append(events, core.Quit())
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if k == ebiten.KeyEscape {
			events = append(events, core.Quit())
			continue
		}
		events = append(events, core.KeyPress(keyName(k)))
	}
	for _, b := range pointerButtons {
		if inpututil.IsMouseButtonJustPressed(b.mouse) {
			x, y := ebiten.CursorPosition()
			events = append(events, core.PointerPress(x, y, b.button))
		}
	}
	return events
}

func keyName(k ebiten.Key) core.Key {
	return core.Key(strings.ToLower(k.String()))
}

// Draw renders the board and the strip under it.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	g.painter.Draw(screen, g.session.Grid())
	g.hud.Draw(screen, g.session.Stats())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Width(), g.layout.Height()
}

// Run opens the window and blocks until the session quits or ctx is done.
// Asset failures are reported before the first frame.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	banner, err := media.LoadBanner(cfg.Assets.Banner)
	switch {
	case err == nil:
		logger.Info("banner loaded", "path", cfg.Assets.Banner)
	case errors.Is(err, media.ErrNoAsset):
		banner = nil
	default:
		return err
	}

	if !opts.Mute {
		player, err := media.PlayMusic(audio.NewContext(media.SampleRate), cfg.Assets.Music)
		switch {
		case err == nil:
			defer player.Close()
			logger.Info("music playing", "path", cfg.Assets.Music)
		case errors.Is(err, media.ErrNoAsset):
		default:
			return err
		}
	}

	session := control.NewSession(control.OptionsFromConfig(cfg, logger))
	game := New(ctx, cfg, session, banner)

	l := cfg.Layout()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(l.Width(), l.Height())
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running game: %w", err)
	}
	stats := session.Stats()
	logger.Info("session ended", "generation", stats.Generation, "frames", stats.Frame)
	return nil
}
