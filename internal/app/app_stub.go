//go:build !ebiten

package app

import "context"

// Run always reports that the GUI build tag is missing.
func Run(context.Context, Options) error {
	return ErrNoGUI
}
