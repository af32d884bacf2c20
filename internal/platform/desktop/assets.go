// Package desktop runs demos in an Ebitengine window: GPU textures, additive
// particle quads, WAV playback through an audio context and the mouse wheel
// as the crank.
package desktop

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"

	"github.com/vovakirdan/bounce-kit/internal/assets"
	"github.com/vovakirdan/bounce-kit/internal/core"
)

const sampleRate = 44100

// ErrMuted is returned by LoadSound when audio is switched off.
var ErrMuted = errors.New("audio muted")

// Texture is a GPU image.
type Texture struct {
	img *ebiten.Image
}

// Size returns the texture dimensions.
func (t *Texture) Size() (int, int) {
	if t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Release frees the GPU image.
func (t *Texture) Release() {
	if t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
}

// Sound is a WAV effect held in memory with its own player.
type Sound struct {
	player *audio.Player
}

// Play rewinds and starts the sound.
func (s *Sound) Play() {
	if s.player == nil {
		return
	}
	if err := s.player.Rewind(); err != nil {
		return
	}
	s.player.Play()
}

// Release closes the player.
func (s *Sound) Release() {
	if s.player != nil {
		s.player.Close() //nolint:errcheck // Nothing to do on a failed close
		s.player = nil
	}
}

// Font pairs an Ebitengine text face with the face it was built from.
type Font struct {
	src  font.Face
	face text.Face
}

// Measure returns the size of text in this font.
func (f *Font) Measure(s string) (float64, float64) {
	return assets.Measure(f.src, s)
}

// Assets loads demo assets for the window.
type Assets struct {
	fsys   fs.FS
	volume float64
	mute   bool
}

// NewAssets creates a loader over fsys. Sounds play at volume (0..1)
// unless mute is set.
func NewAssets(fsys fs.FS, volume float64, mute bool) *Assets {
	return &Assets{fsys: fsys, volume: volume, mute: mute}
}

// LoadTexture decodes an image into a GPU texture.
func (a *Assets) LoadTexture(name string) (core.Texture, error) {
	img, err := assets.DecodeImage(a.fsys, name)
	if err != nil {
		return nil, err
	}
	return &Texture{img: ebiten.NewImageFromImage(img)}, nil
}

// LoadSound decodes a WAV file and creates a player for it.
func (a *Assets) LoadSound(name string) (core.Sound, error) {
	if a.mute {
		return nil, ErrMuted
	}
	data, err := fs.ReadFile(a.fsys, name)
	if err != nil {
		return nil, err
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("player %s: %w", name, err)
	}
	player.SetVolume(core.ClampF(a.volume, 0, 1))
	return &Sound{player: player}, nil
}

// LoadFont resolves a font name.
func (a *Assets) LoadFont(name string) (core.Font, error) {
	face, err := assets.LoadFace(a.fsys, name)
	if err != nil {
		return nil, err
	}
	return &Font{src: face, face: text.NewGoXFace(face)}, nil
}

// Host is the window host handed to demos.
type Host struct {
	assets *Assets
	logger *log.Logger
}

// NewHost creates a host.
func NewHost(a *Assets, logger *log.Logger) *Host {
	return &Host{assets: a, logger: logger}
}

func (h *Host) Assets() core.Assets { return h.assets }
func (h *Host) Logger() *log.Logger { return h.logger }
