//go:build ebiten

package media

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

// PlayMusic decodes the MP3 at path and starts it looping forever.
func PlayMusic(ctx *audio.Context, path string) (*audio.Player, error) {
	data, err := ReadAsset(path)
	if err != nil {
		return nil, err
	}
	stream, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding music %s: %w", path, err)
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("creating music player: %w", err)
	}
	player.Play()
	return player, nil
}
