package core

import (
	"image/color"

	"github.com/charmbracelet/log"
)

// Texture is an opaque image handle produced by a host's asset loader.
type Texture interface {
	// Size returns the texture dimensions in logical pixels.
	Size() (w, h int)
	// Release frees the underlying image. Safe to call more than once.
	Release()
}

// Sound is an opaque sound effect handle.
type Sound interface {
	// Play starts the sound from the beginning, restarting it if it is
	// already playing.
	Play()
	Release()
}

// Font is an opaque font handle.
type Font interface {
	// Measure returns the size of text rendered with this font.
	Measure(text string) (w, h float64)
}

// Assets loads named assets. Hosts resolve names against their asset
// filesystem; a failed load returns a nil handle and an error.
type Assets interface {
	LoadTexture(name string) (Texture, error)
	LoadSound(name string) (Sound, error)
	LoadFont(name string) (Font, error)
}

// DrawOptions positions a texture. X and Y address the texture centre.
type DrawOptions struct {
	X, Y     float64
	Rotation float64 // radians, clockwise
	Scale    float64 // 0 is treated as 1
	Alpha    float64 // 0 is treated as 1
}

// Canvas is the draw surface a host hands to a demo once per frame.
type Canvas interface {
	Size() (w, h int)
	Clear(c color.Color)
	DrawTexture(t Texture, op DrawOptions)
	DrawText(f Font, text string, x, y float64, c color.Color)
	FillRect(r Rect, c color.Color)
	DrawParticle(x, y, size float64, c color.RGBA, additive bool)
}

// Host is what a demo sees of the program running it.
type Host interface {
	Assets() Assets
	Logger() *log.Logger
}
