// Package demotest provides an in-memory host, asset loader and canvas for
// testing demos without a window or audio device.
package demotest

import (
	"fmt"
	"image/color"
	"io"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bounce-kit/internal/core"
)

// Texture is a fake texture of a fixed size.
type Texture struct {
	W, H     int
	Released int
}

func (t *Texture) Size() (int, int) { return t.W, t.H }
func (t *Texture) Release()         { t.Released++ }

// Sound counts plays.
type Sound struct {
	Plays    int
	Released int
}

func (s *Sound) Play()    { s.Plays++ }
func (s *Sound) Release() { s.Released++ }

// Font is a fixed-width fake font.
type Font struct {
	Advance, Height float64
}

func (f *Font) Measure(text string) (float64, float64) {
	return f.Advance * float64(utf8.RuneCountInString(text)), f.Height
}

// Assets serves fakes by name. Missing names fail to load.
type Assets struct {
	Textures map[string]*Texture
	Sounds   map[string]*Sound
	Fonts    map[string]*Font
}

func (a *Assets) LoadTexture(name string) (core.Texture, error) {
	if t, ok := a.Textures[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("texture %s: not found", name)
}

func (a *Assets) LoadSound(name string) (core.Sound, error) {
	if s, ok := a.Sounds[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("sound %s: not found", name)
}

func (a *Assets) LoadFont(name string) (core.Font, error) {
	if f, ok := a.Fonts[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("font %s: not found", name)
}

// Host is a fake host with a discarding logger.
type Host struct {
	Loader *Assets
	Log    *log.Logger
}

// NewHost creates a host serving the given assets.
func NewHost(a *Assets) *Host {
	return &Host{Loader: a, Log: log.New(io.Discard)}
}

func (h *Host) Assets() core.Assets { return h.Loader }
func (h *Host) Logger() *log.Logger { return h.Log }

// TextureCall records one DrawTexture.
type TextureCall struct {
	Texture core.Texture
	Op      core.DrawOptions
}

// TextCall records one DrawText.
type TextCall struct {
	Text  string
	X, Y  float64
	Color color.Color
}

// ParticleCall records one DrawParticle.
type ParticleCall struct {
	X, Y, Size float64
	Color      color.RGBA
	Additive   bool
}

// Canvas records draw calls.
type Canvas struct {
	W, H      int
	Clears    []color.Color
	Textures  []TextureCall
	Texts     []TextCall
	Rects     []core.Rect
	Particles []ParticleCall
}

// Reset forgets recorded calls.
func (c *Canvas) Reset() {
	c.Clears, c.Textures, c.Texts, c.Rects, c.Particles = nil, nil, nil, nil, nil
}

func (c *Canvas) Size() (int, int)      { return c.W, c.H }
func (c *Canvas) Clear(col color.Color) { c.Clears = append(c.Clears, col) }

func (c *Canvas) DrawTexture(t core.Texture, op core.DrawOptions) {
	c.Textures = append(c.Textures, TextureCall{Texture: t, Op: op})
}

func (c *Canvas) DrawText(_ core.Font, text string, x, y float64, col color.Color) {
	c.Texts = append(c.Texts, TextCall{Text: text, X: x, Y: y, Color: col})
}

func (c *Canvas) FillRect(r core.Rect, _ color.Color) {
	c.Rects = append(c.Rects, r)
}

func (c *Canvas) DrawParticle(x, y, size float64, col color.RGBA, additive bool) {
	c.Particles = append(c.Particles, ParticleCall{X: x, Y: y, Size: size, Color: col, Additive: additive})
}

// Frame builds a frame with the given elapsed time and actions.
func Frame(elapsed float64, actions ...core.Action) core.Frame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return core.Frame{Elapsed: elapsed, Input: in}
}
