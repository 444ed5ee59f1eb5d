package ui

import (
	"testing"

	"lifegrid/internal/control"
	"lifegrid/internal/core"
)

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name  string
		stats control.Stats
		want  string
	}{
		{
			name:  "edit",
			stats: control.Stats{Mode: core.ModeEdit, Population: 5},
			want:  "EDIT gen 0  pop 5  |  space: run  click: toggle",
		},
		{
			name:  "run",
			stats: control.Stats{Mode: core.ModeRun, Generation: 12, Population: 30},
			want:  "RUN  gen 12  pop 30  |  space: pause",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusLine(tt.stats, "space"); got != tt.want {
				t.Fatalf("StatusLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
