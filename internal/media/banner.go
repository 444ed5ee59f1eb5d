//go:build ebiten

package media

import (
	"bytes"
	"fmt"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadBanner decodes the image at path for the strip under the board.
func LoadBanner(path string) (*ebiten.Image, error) {
	data, err := ReadAsset(path)
	if err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding banner %s: %w", path, err)
	}
	return img, nil
}
