package ui

import (
	"fmt"
	"strings"

	"lifegrid/internal/control"
	"lifegrid/internal/core"
)

// StatusLine renders the one-line summary shown in the strip under the board.
func StatusLine(s control.Stats, toggleKey string) string {
	mode := strings.ToUpper(s.Mode.String())
	help := fmt.Sprintf("%s: run  click: toggle", toggleKey)
	if s.Mode == core.ModeRun {
		help = fmt.Sprintf("%s: pause", toggleKey)
	}
	return fmt.Sprintf("%-4s gen %d  pop %d  |  %s", mode, s.Generation, s.Population, help)
}
