package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/config"
	"lifegrid/internal/control"
	"lifegrid/internal/core"
)

func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want core.Event
		ok   bool
	}{
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.KeyPress(core.KeySpace), true},
		{"letter lower-cased", tcell.NewEventKey(tcell.KeyRune, 'P', tcell.ModNone), core.KeyPress("p"), true},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.Quit(), true},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.Quit(), true},
		{"arrow ignored", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr Translator
			got, ok := tr.Translate(tt.ev)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("Translate() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTranslateMouseEdges(t *testing.T) {
	var tr Translator

	got, ok := tr.Translate(tcell.NewEventMouse(7, 3, tcell.Button1, tcell.ModNone))
	if !ok || got != core.PointerPress(3, 3, core.ButtonPrimary) {
		t.Fatalf("press = %+v, %v", got, ok)
	}
	if _, ok := tr.Translate(tcell.NewEventMouse(8, 3, tcell.Button1, tcell.ModNone)); ok {
		t.Fatal("drag with the button held should not press again")
	}
	if _, ok := tr.Translate(tcell.NewEventMouse(8, 3, tcell.ButtonNone, tcell.ModNone)); ok {
		t.Fatal("release should not produce an event")
	}
	got, ok = tr.Translate(tcell.NewEventMouse(0, 0, tcell.Button2, tcell.ModNone))
	if !ok || got.Button != core.ButtonSecondary {
		t.Fatalf("right press = %+v, %v", got, ok)
	}
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func TestDraw(t *testing.T) {
	screen := newScreen(t)
	g := core.NewGrid(3, 4)
	g.Set(1, 2, true)

	Draw(screen, g, control.Stats{Mode: core.ModeEdit, Population: 1}, "space")
	screen.Show()

	bgAt := func(x, y int) tcell.Color {
		_, _, style, _ := screen.GetContent(x, y)
		_, bg, _ := style.Decompose()
		return bg
	}
	if bg := bgAt(4, 1); bg != tcell.ColorWhite {
		t.Fatalf("live cell left half bg = %v, want white", bg)
	}
	if bg := bgAt(5, 1); bg != tcell.ColorWhite {
		t.Fatalf("live cell right half bg = %v, want white", bg)
	}
	if bg := bgAt(0, 0); bg != tcell.ColorBlack {
		t.Fatalf("dead cell bg = %v, want black", bg)
	}

	var status strings.Builder
	for x := 0; x < 8; x++ {
		r, _, _, _ := screen.GetContent(x, 3)
		status.WriteRune(r)
	}
	if got := status.String(); got != "EDIT gen" {
		t.Fatalf("status line starts %q, want %q", got, "EDIT gen")
	}
}

func TestLoopAppliesInputUntilQuit(t *testing.T) {
	screen := newScreen(t)
	cfg := config.Default()
	cfg.FPS = 500
	session := NewSession(cfg, nil)

	screen.InjectMouse(4, 1, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(4, 1, tcell.ButtonNone, tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	Loop(ctx, screen, session, cfg)

	if ctx.Err() != nil {
		t.Fatal("loop ended by timeout instead of the quit key")
	}
	if !session.Grid().Alive(1, 2) {
		t.Fatal("mouse press at column 4, row 1 should toggle cell (1,2)")
	}
	if session.Mode() != core.ModeEdit {
		t.Fatalf("mode = %v, want edit", session.Mode())
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	screen := newScreen(t)
	cfg := config.Default()
	session := NewSession(cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	Loop(ctx, screen, session, cfg)

	if got := session.Stats().Frame; got != 1 {
		t.Fatalf("frames = %d, want a single quitting frame", got)
	}
}

