//go:build !ebiten

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lifegrid/internal/app"
)

func TestRunWithoutGUITag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifegrid.yaml")
	if err := os.WriteFile(path, []byte("fps: 30\n"), 0600); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "run", "--config", path, "--mute")
	if !errors.Is(err, app.ErrNoGUI) {
		t.Fatalf("run error = %v, want ErrNoGUI", err)
	}
}
