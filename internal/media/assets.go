// Package media loads the optional banner image and background music.
package media

import (
	"errors"
	"fmt"
	"os"
)

// SampleRate is the audio context rate used for music playback.
const SampleRate = 44100

// ErrNoAsset reports that an asset was not configured. Hosts skip the asset.
var ErrNoAsset = errors.New("asset not configured")

// ReadAsset reads the file at path.
func ReadAsset(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrNoAsset
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading asset %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("reading asset %s: file is empty", path)
	}
	return data, nil
}
