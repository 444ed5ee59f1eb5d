// Package app hosts a session in an ebiten window.
package app

import (
	"errors"
	"log/slog"

	"lifegrid/internal/config"
)

// ErrNoGUI is returned by Run in binaries built without the ebiten tag.
var ErrNoGUI = errors.New("the window host requires building with the 'ebiten' tag (go build -tags ebiten)")

// Options configures the window host.
type Options struct {
	Config *config.Config
	Logger *slog.Logger
	// Mute skips loading and playing the background music.
	Mute bool
}
